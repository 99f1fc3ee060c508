// Package access decides whether an authenticated actor may perform an action on an
// entity. Handlers call it after loading the entity and before writing.
package access

import (
	"errors"
	"slices"

	"eventPlanner/internal/models"
)

const RoleAdmin = "ROLE_ADMIN"

var ErrForbidden = errors.New("access denied")

type Action string

const (
	Read    Action = "read"
	Create  Action = "create"
	Update  Action = "update"
	Confirm Action = "confirm"
	Delete  Action = "delete"
	Purge   Action = "purge"
)

type Actor struct {
	UserID int64
	Roles  []string
}

func (a Actor) IsAdmin() bool {
	return slices.Contains(a.Roles, RoleAdmin)
}

// Invitation: organizers manage invitations to their events, recipients confirm them.
func Invitation(actor Actor, action Action, inv models.Invitation, event models.Event) bool {
	if actor.IsAdmin() {
		return true
	}

	switch action {
	case Read:
		return true
	case Create, Update, Delete:
		return event.OrganizerID == actor.UserID
	case Confirm:
		return inv.RecipientID == actor.UserID
	default:
		return false
	}
}

// Comment: anyone may write their own comment, only the author edits it.
func Comment(actor Actor, action Action, c models.Comment) bool {
	if actor.IsAdmin() {
		return true
	}

	switch action {
	case Read, Create:
		return true
	case Update, Delete:
		return c.AuthorID == actor.UserID
	default:
		return false
	}
}

func Place(actor Actor, action Action) bool {
	if actor.IsAdmin() {
		return true
	}

	switch action {
	case Read, Create, Update:
		return true
	default:
		return false
	}
}
