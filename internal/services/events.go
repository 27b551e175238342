package services

import (
	"errors"

	"catalog/internal/apperr"
	"catalog/internal/repositories"

	"github.com/rs/zerolog"
)

// Event types published after successful mutations.
const (
	EventItemCreated     = "item.created"
	EventItemUpdated     = "item.updated"
	EventItemDeleted     = "item.deleted"
	EventMerchantCreated = "merchant.created"
	EventMerchantUpdated = "merchant.updated"
	EventMerchantDeleted = "merchant.deleted"
)

// EventPublisher sends catalog change events to other systems.
type EventPublisher interface {
	PublishEvent(eventType string, data interface{}) error
}

type deletedEvent struct {
	ID uint `json:"id"`
}

// notifier publishes events on a best-effort basis: a failed publish is
// logged and never reaches the caller.
type notifier struct {
	events EventPublisher
	log    zerolog.Logger
}

func (n notifier) publish(eventType string, data interface{}) {
	if n.events == nil {
		return
	}
	if err := n.events.PublishEvent(eventType, data); err != nil {
		n.log.Warn().Err(err).Str("event", eventType).Msg("failed to publish event")
		return
	}
	n.log.Debug().Str("event", eventType).Msg("event published")
}

func isNotFound(err error) bool {
	return errors.Is(err, repositories.ErrNotFound)
}

func internal(message string, err error) error {
	return apperr.NewInternal(message, err)
}
