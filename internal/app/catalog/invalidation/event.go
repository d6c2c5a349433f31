package invalidation

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrMalformedEvent is returned for payloads that are not a valid change event.
var ErrMalformedEvent = errors.New("malformed change event")

// Entity is the kind of catalog record that changed.
type Entity string

const (
	EntityProduct  Entity = "product"
	EntityCategory Entity = "category"
)

// Action is what happened to the record.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Event announces a change to a catalog record.
type Event struct {
	Entity     Entity    `json:"entity" validate:"required,oneof=product category"`
	ID         string    `json:"id" validate:"required"`
	Action     Action    `json:"action" validate:"required,oneof=created updated deleted"`
	OccurredAt time.Time `json:"occurredAt"`
}

var validate = validator.New()

// NewEvent creates an event stamped with occurredAt.
func NewEvent(entity Entity, id string, action Action, occurredAt time.Time) Event {
	return Event{
		Entity:     entity,
		ID:         id,
		Action:     action,
		OccurredAt: occurredAt.UTC(),
	}
}

// Validate checks that the event names a known entity and action.
func (e Event) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	return nil
}

// Encode serializes a valid event.
func (e Event) Encode() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(e)
}

// DecodeEvent parses and validates a serialized event.
func DecodeEvent(data []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if err := e.Validate(); err != nil {
		return Event{}, err
	}
	return e, nil
}
