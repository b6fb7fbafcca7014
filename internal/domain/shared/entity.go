package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity holds the identity and timestamps every entity carries
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBaseEntity creates a base entity with a generated ID, stamped now
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch records a modification of the entity
func (e *BaseEntity) Touch() {
	e.UpdatedAt = time.Now()
}
