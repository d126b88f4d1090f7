package api

import (
	"time"

	"github.com/google/uuid"

	"heritage-api/internal/model"
)

// UserPublic is every user field a client may see.
// swagger:model api.UserPublic
type UserPublic struct {
	ID          uuid.UUID `json:"id" example:"5b0e7c64-8d7a-4f3e-9a55-2f1d6f0c9b11"`
	Email       string    `json:"email" example:"alice@example.com"`
	Name        *string   `json:"name" example:"Alice"`
	IsActive    bool      `json:"is_active" example:"true"`
	IsSuperuser bool      `json:"is_superuser" example:"false"`
	CreatedAt   time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

func NewUserPublic(u *model.User) UserPublic {
	return UserPublic{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
		CreatedAt:   u.CreatedAt,
	}
}

// swagger:model api.UsersPublic
type UsersPublic struct {
	Data  []UserPublic `json:"data"`
	Count int          `json:"count" example:"1"`
}
