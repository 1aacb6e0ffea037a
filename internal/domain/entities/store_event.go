package entities

import (
	"time"

	"github.com/google/uuid"
)

// StoreEntity identifies which collection a store event refers to
type StoreEntity string

const (
	StoreEntityAuth           StoreEntity = "auth"
	StoreEntityPatients       StoreEntity = "patients"
	StoreEntityAppointments   StoreEntity = "appointments"
	StoreEntityTranscriptions StoreEntity = "transcriptions"
)

// StoreAction represents the kind of change a store committed
type StoreAction string

const (
	StoreActionLoaded  StoreAction = "loaded"
	StoreActionCreated StoreAction = "created"
	StoreActionUpdated StoreAction = "updated"
)

// StoreEvent represents a committed state change in one of the entity
// stores, published so the view layer can subscribe instead of polling.
type StoreEvent struct {
	ID        string      `json:"id"`
	Entity    StoreEntity `json:"entity"`
	Action    StoreAction `json:"action"`
	EntityID  string      `json:"entityId,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewStoreEvent creates a new store event
func NewStoreEvent(entity StoreEntity, action StoreAction, entityID string) *StoreEvent {
	return &StoreEvent{
		ID:        uuid.NewString(),
		Entity:    entity,
		Action:    action,
		EntityID:  entityID,
		Timestamp: time.Now(),
	}
}
