package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"catalog/internal/apperr"
	"catalog/internal/middleware"
	"catalog/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Resource types as they appear in the "type" member of a resource.
const (
	TypeItem     = "item"
	TypeMerchant = "merchant"
)

const internalMessage = "internal server error"

// Resource is one serialised entity inside a "data" member.
type Resource struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	Attributes interface{} `json:"attributes"`
}

type itemAttributes struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	MerchantID  uint    `json:"merchant_id"`
}

type merchantAttributes struct {
	Name string `json:"name"`
}

func itemResource(item *models.Item) Resource {
	return Resource{
		ID:   strconv.FormatUint(uint64(item.ID), 10),
		Type: TypeItem,
		Attributes: itemAttributes{
			Name:        item.Name,
			Description: item.Description,
			UnitPrice:   item.UnitPrice,
			MerchantID:  item.MerchantID,
		},
	}
}

func itemResources(items []models.Item) []Resource {
	resources := make([]Resource, 0, len(items))
	for i := range items {
		resources = append(resources, itemResource(&items[i]))
	}
	return resources
}

func merchantResource(merchant *models.Merchant) Resource {
	return Resource{
		ID:         strconv.FormatUint(uint64(merchant.ID), 10),
		Type:       TypeMerchant,
		Attributes: merchantAttributes{Name: merchant.Name},
	}
}

func merchantResources(merchants []models.Merchant) []Resource {
	resources := make([]Resource, 0, len(merchants))
	for i := range merchants {
		resources = append(resources, merchantResource(&merchants[i]))
	}
	return resources
}

func single(c *fiber.Ctx, status int, resource Resource) error {
	return c.Status(status).JSON(fiber.Map{"data": resource})
}

func collection(c *fiber.Ctx, resources []Resource) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": resources})
}

func empty(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": fiber.Map{}})
}

type errorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []apperr.FieldError `json:"fields,omitempty"`
}

type errorEnvelope struct {
	Data  interface{} `json:"data"`
	Error errorDetail `json:"error"`
}

// ErrorHandler writes every error response. When legacy is set the body
// follows the shape the raising layer used to produce; otherwise all
// errors share one envelope.
func ErrorHandler(legacy bool, log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := apperr.As(err); ok {
			return writeAppError(c, appErr, legacy, log)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			if legacy {
				return c.Status(fiberErr.Code).JSON(fiber.Map{"errors": fiberErr.Message})
			}
			return c.Status(fiberErr.Code).JSON(errorEnvelope{
				Error: errorDetail{Code: statusCode(fiberErr.Code), Message: fiberErr.Message},
			})
		}

		return writeAppError(c, apperr.NewInternal(internalMessage, err), legacy, log)
	}
}

func writeAppError(c *fiber.Ctx, appErr *apperr.Error, legacy bool, log zerolog.Logger) error {
	status := appErr.Status(legacy)
	message := appErr.Message
	if appErr.Kind == apperr.Internal {
		log.Error().
			Err(appErr).
			Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("request failed")
		message = internalMessage
	}

	if !legacy {
		return c.Status(status).JSON(errorEnvelope{
			Error: errorDetail{Code: appErr.Kind.Code(), Message: message, Fields: appErr.Fields},
		})
	}

	switch appErr.Origin {
	case apperr.OriginSearch:
		return c.Status(status).JSON(fiber.Map{"data": fiber.Map{"errors": message}})
	case apperr.OriginStore:
		return c.Status(status).JSON(fiber.Map{"error": message})
	default:
		return c.Status(status).JSON(fiber.Map{"errors": message})
	}
}

// statusCode turns a bare HTTP status into an error code such as
// METHOD_NOT_ALLOWED.
func statusCode(status int) string {
	if status == http.StatusNotFound {
		return apperr.NotFound.Code()
	}
	text := http.StatusText(status)
	if text == "" {
		return apperr.Internal.Code()
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// parseID reads the :id route parameter. Anything that is not a positive
// integer cannot name a record, so it is reported as not found.
func parseID(c *fiber.Ctx, entity string, origin apperr.Origin) (uint, error) {
	raw := c.Params("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, &apperr.Error{Kind: apperr.NotFound, Origin: origin, Message: notFoundMessage(entity, raw, origin)}
	}
	return uint(id), nil
}

func notFoundMessage(entity, raw string, origin apperr.Origin) string {
	if origin == apperr.OriginStore {
		return "Couldn't find " + entity + " with 'id'=" + raw
	}
	return entity + " with id " + raw + " does not exist"
}

func malformedBody(err error) error {
	return apperr.NewValidationFailed("malformed request body", nil).WithCause(err)
}
