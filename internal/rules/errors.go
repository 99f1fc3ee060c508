package rules

import (
	"errors"
	"fmt"
)

// Kinds of rule failures. Every *Violation unwraps to exactly one of them.
var (
	ErrDuplicate = errors.New("duplicate")
	ErrInvariant = errors.New("invariant violation")
	ErrNotFound  = errors.New("not found")
)

// Violation is a client-facing rule failure attached to a field path.
type Violation struct {
	Kind    error
	Field   string
	Message string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

func (v *Violation) Unwrap() error {
	return v.Kind
}

var (
	ErrSelfInvitation    = &Violation{Kind: ErrInvariant, Field: "recipient", Message: "Cannot invite author of the event"}
	ErrAlreadyInvited    = &Violation{Kind: ErrDuplicate, Field: "recipient", Message: "User is already invited to this event"}
	ErrExpireAtNotFuture = &Violation{Kind: ErrInvariant, Field: "expireAt", Message: "Expiration date must be in the future"}
	ErrInvitationExpired = &Violation{Kind: ErrInvariant, Field: "confirmed", Message: "Your invitation has expired"}

	ErrNotInvited       = &Violation{Kind: ErrInvariant, Field: "event", Message: "You were not invited to this event or did not confirmed."}
	ErrEventNotFinished = &Violation{Kind: ErrInvariant, Field: "event", Message: "This event is not finished"}
	ErrAlreadyCommented = &Violation{Kind: ErrDuplicate, Field: "author", Message: "User already left a comment for this event"}
	ErrRateOutOfRange   = &Violation{Kind: ErrInvariant, Field: "rate", Message: "Rate must be between 1 and 5"}

	ErrEventNotFound      = &Violation{Kind: ErrNotFound, Field: "event", Message: "Event not found"}
	ErrUserNotFound       = &Violation{Kind: ErrNotFound, Field: "recipient", Message: "User not found"}
	ErrAuthorNotFound     = &Violation{Kind: ErrNotFound, Field: "author", Message: "User not found"}
	ErrInvitationNotFound = &Violation{Kind: ErrNotFound, Field: "id", Message: "Invitation not found"}
	ErrCommentNotFound    = &Violation{Kind: ErrNotFound, Field: "id", Message: "Comment not found"}
	ErrPlaceNotFound      = &Violation{Kind: ErrNotFound, Field: "id", Message: "Place not found"}
	ErrUnknownUser        = &Violation{Kind: ErrNotFound, Field: "id", Message: "User not found"}
)

// PlaceNameTaken reports a second place with an already used name.
func PlaceNameTaken(name string) *Violation {
	return &Violation{Kind: ErrDuplicate, Field: "name", Message: fmt.Sprintf("A place %q already exists", name)}
}

// Violations flattens err, including errors.Join trees and %w wrapping, into the
// violations it carries, in order.
func Violations(err error) []*Violation {
	var out []*Violation

	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		if v, ok := e.(*Violation); ok {
			out = append(out, v)
			return
		}
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(err)

	return out
}

func join(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}
