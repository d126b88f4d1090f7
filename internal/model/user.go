package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	Name           *string   `db:"name" json:"name"`
	HashedPassword string    `db:"hashed_password" json:"-"`
	IsActive       bool      `db:"is_active" json:"is_active"`
	IsSuperuser    bool      `db:"is_superuser" json:"is_superuser"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
