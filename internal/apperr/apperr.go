// Package apperr defines the error kinds the API reports to clients and the
// table that maps each kind to an HTTP status.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the response layer.
type Kind int

const (
	Internal Kind = iota
	InvalidCombination
	MissingParameter
	EmptyParameter
	NegativeValue
	ValidationFailed
	NotFound
)

var kindCodes = map[Kind]string{
	Internal:           "INTERNAL_SERVER_ERROR",
	InvalidCombination: "INVALID_COMBINATION",
	MissingParameter:   "MISSING_PARAMETER",
	EmptyParameter:     "EMPTY_PARAMETER",
	NegativeValue:      "NEGATIVE_VALUE",
	ValidationFailed:   "VALIDATION_FAILED",
	NotFound:           "NOT_FOUND",
}

// Code returns the machine readable code sent in unified error envelopes.
func (k Kind) Code() string {
	if code, ok := kindCodes[k]; ok {
		return code
	}
	return kindCodes[Internal]
}

func (k Kind) String() string { return k.Code() }

// statusByKind is consulted by the response writer; nothing else decides
// which status an error gets.
var statusByKind = map[Kind]int{
	Internal:           http.StatusInternalServerError,
	InvalidCombination: http.StatusBadRequest,
	MissingParameter:   http.StatusBadRequest,
	EmptyParameter:     http.StatusBadRequest,
	NegativeValue:      http.StatusBadRequest,
	ValidationFailed:   http.StatusBadRequest,
	NotFound:           http.StatusNotFound,
}

// Origin records which layer raised the error. The legacy envelope style
// picks its shape from it.
type Origin int

const (
	// OriginLookup is an explicit existence check in a service.
	OriginLookup Origin = iota
	// OriginSearch is parameter validation on a search endpoint.
	OriginSearch
	// OriginStore is a not-found coming straight out of a store lookup.
	OriginStore
)

// FieldError is a single failed field rule.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Error is the typed error every service and resolver returns.
type Error struct {
	Kind    Kind
	Message string
	Origin  Origin
	Fields  []FieldError

	// legacyStatus overrides the status table when legacy envelopes are on.
	legacyStatus int
	cause        error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Status returns the HTTP status for the error. With legacy set, an
// override from WithLegacyStatus wins over the table.
func (e *Error) Status(legacy bool) int {
	if legacy && e.legacyStatus != 0 {
		return e.legacyStatus
	}
	if status, ok := statusByKind[e.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WithCause attaches the underlying error.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// WithFields attaches field level validation errors.
func (e *Error) WithFields(fields []FieldError) *Error {
	e.Fields = fields
	return e
}

// WithLegacyStatus sets the status used when legacy envelopes are enabled.
func (e *Error) WithLegacyStatus(status int) *Error {
	e.legacyStatus = status
	return e
}

func newError(kind Kind, origin Origin, message string) *Error {
	return &Error{Kind: kind, Origin: origin, Message: message}
}

// NewInvalidCombination reports mutually exclusive search parameters.
func NewInvalidCombination(message string) *Error {
	return newError(InvalidCombination, OriginSearch, message)
}

// NewMissingParameter reports a search without any recognised parameter.
func NewMissingParameter(message string) *Error {
	return newError(MissingParameter, OriginSearch, message)
}

// NewEmptyParameter reports a recognised search parameter with no value.
func NewEmptyParameter(message string) *Error {
	return newError(EmptyParameter, OriginSearch, message)
}

// NewNegativeValue reports a price bound below zero.
func NewNegativeValue(message string) *Error {
	return newError(NegativeValue, OriginSearch, message)
}

// NewValidationFailed reports entity rules that did not hold.
func NewValidationFailed(message string, fields []FieldError) *Error {
	return newError(ValidationFailed, OriginLookup, message).WithFields(fields)
}

// NewNotFound reports an id that does not resolve, found by an existence check.
func NewNotFound(entity string, id uint) *Error {
	return newError(NotFound, OriginLookup, fmt.Sprintf("%s with id %d does not exist", entity, id))
}

// NewStoreNotFound reports an id the store failed to find while loading it.
func NewStoreNotFound(entity string, id uint, cause error) *Error {
	return newError(NotFound, OriginStore, fmt.Sprintf("Couldn't find %s with 'id'=%d", entity, id)).WithCause(cause)
}

// NewInternal wraps an unexpected failure; its message never reaches clients.
func NewInternal(message string, cause error) *Error {
	return newError(Internal, OriginLookup, message).WithCause(cause)
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}
