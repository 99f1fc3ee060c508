package rules

import (
	"time"

	"eventPlanner/internal/models"
)

// IsExpired reports whether inv can no longer be acted upon at now. An explicit
// expiry wins; without one the invitation lives as long as its event.
func IsExpired(inv models.Invitation, now time.Time) bool {
	if inv.ExpireAt != nil {
		return now.After(*inv.ExpireAt)
	}
	return now.After(inv.EventEndAt)
}

// NewInvitation builds an unconfirmed invitation of recipient to event.
// event.Participants must hold every invitation of the event, soft-deleted ones included.
func NewInvitation(event models.Event, recipient models.User, expireAt *time.Time, now time.Time) (models.Invitation, error) {
	var errs []error

	if recipient.ID == event.OrganizerID {
		errs = append(errs, ErrSelfInvitation)
	}
	if isInvited(event, recipient.ID, 0) {
		errs = append(errs, ErrAlreadyInvited)
	}
	if expireAt != nil && !expireAt.After(now) {
		errs = append(errs, ErrExpireAtNotFuture)
	}
	if err := join(errs); err != nil {
		return models.Invitation{}, err
	}

	inv := models.Invitation{
		EventID:     event.ID,
		RecipientID: recipient.ID,
		Confirmed:   false,
		ExpireAt:    copyTime(expireAt),
		CreatedAt:   now,
		EventEndAt:  event.EndAt,
	}
	inv.Expired = IsExpired(inv, now)

	return inv, nil
}

// ReviseInvitation moves current to another event, recipient or expiry.
// The expiry is not required to be in the future here, only on creation.
func ReviseInvitation(current models.Invitation, event models.Event, recipient models.User, expireAt *time.Time, now time.Time) (models.Invitation, error) {
	var errs []error

	if recipient.ID == event.OrganizerID {
		errs = append(errs, ErrSelfInvitation)
	}
	if isInvited(event, recipient.ID, current.ID) {
		errs = append(errs, ErrAlreadyInvited)
	}
	if err := join(errs); err != nil {
		return current, err
	}

	revised := current
	revised.EventID = event.ID
	revised.RecipientID = recipient.ID
	revised.ExpireAt = copyTime(expireAt)
	revised.EventEndAt = event.EndAt
	revised.UpdatedAt = &now
	revised.Expired = IsExpired(revised, now)

	return revised, nil
}

// Confirm accepts inv at now. On failure inv is returned untouched.
func Confirm(inv models.Invitation, now time.Time) (models.Invitation, error) {
	confirmed := inv
	confirmed.Confirmed = true

	if IsExpired(confirmed, now) {
		return inv, ErrInvitationExpired
	}

	confirmed.UpdatedAt = &now
	confirmed.Expired = false

	return confirmed, nil
}

func isInvited(event models.Event, recipientID, exceptID int64) bool {
	for _, p := range event.Participants {
		if p.RecipientID == recipientID && p.ID != exceptID {
			return true
		}
	}
	return false
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
