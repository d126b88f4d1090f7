// Package policy decides who may act on an owned record. It has no I/O;
// callers load the record first so that a missing row is reported as not
// found before any permission check runs.
package policy

import (
	"fmt"

	"github.com/google/uuid"

	"heritage-api/internal/apperr"
	"heritage-api/internal/model"
)

type Action string

const (
	Read   Action = "read"
	Create Action = "create"
	Update Action = "update"
	Delete Action = "delete"
)

// CanAccess reports whether u may perform a on a record owned by ownerID.
// Superusers may do anything. Anyone active may create. Everything else
// requires ownership; a record without an owner is superuser-only.
func CanAccess(u *model.User, ownerID *uuid.UUID, a Action) bool {
	if u == nil || !u.IsActive {
		return false
	}
	if u.IsSuperuser {
		return true
	}
	switch a {
	case Create:
		return true
	case Read, Update, Delete:
		return ownerID != nil && *ownerID == u.ID
	default:
		return false
	}
}

// Authorize is CanAccess as an error.
func Authorize(u *model.User, ownerID *uuid.UUID, a Action) error {
	if CanAccess(u, ownerID, a) {
		return nil
	}
	return fmt.Errorf("%w: not allowed to %s this record", apperr.ErrPermissionDenied, a)
}

// ListScope returns the owner filter for list queries: nil for superusers,
// the caller's own id otherwise.
func ListScope(u *model.User) *uuid.UUID {
	if u.IsSuperuser {
		return nil
	}
	id := u.ID
	return &id
}
