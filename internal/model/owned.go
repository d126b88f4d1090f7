package model

import (
	"time"

	"github.com/google/uuid"
)

// Owned is embedded by every content type. OwnerID is set to the creator at
// insert time and never changes afterwards; nil marks a legacy or shared row.
type Owned struct {
	ID        uuid.UUID  `json:"id"`
	OwnerID   *uuid.UUID `json:"owner_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// setDefault fills an optional column the caller left out.
func setDefault(p **string, v string) {
	if *p == nil {
		*p = &v
	}
}
