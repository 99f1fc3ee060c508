package rules

import (
	"time"

	"eventPlanner/internal/models"
)

const (
	MinRate = 1
	MaxRate = 5
)

// NewComment checks that author may rate event and builds the comment.
// event.Participants and event.Comments must both be loaded.
func NewComment(author models.User, event models.Event, content string, rate *int, now time.Time) (models.Comment, error) {
	var errs []error

	if !hasConfirmedInvitation(event, author.ID) {
		errs = append(errs, ErrNotInvited)
	}
	if !event.EndAt.Before(now) {
		errs = append(errs, ErrEventNotFinished)
	}
	if hasCommented(event, author.ID) {
		errs = append(errs, ErrAlreadyCommented)
	}
	if !rateInRange(rate) {
		errs = append(errs, ErrRateOutOfRange)
	}
	if err := join(errs); err != nil {
		return models.Comment{}, err
	}

	return models.Comment{
		AuthorID:  author.ID,
		EventID:   event.ID,
		Content:   content,
		Rate:      copyInt(rate),
		CreatedAt: now,
	}, nil
}

// ReviseComment edits the text and rate of current. Author and event never change.
func ReviseComment(current models.Comment, content string, rate *int, now time.Time) (models.Comment, error) {
	if !rateInRange(rate) {
		return current, ErrRateOutOfRange
	}

	revised := current
	revised.Content = content
	revised.Rate = copyInt(rate)
	revised.UpdatedAt = &now

	return revised, nil
}

func hasConfirmedInvitation(event models.Event, userID int64) bool {
	for _, p := range event.Participants {
		if p.RecipientID == userID && p.Confirmed && p.DeletedAt == nil {
			return true
		}
	}
	return false
}

func hasCommented(event models.Event, userID int64) bool {
	for _, c := range event.Comments {
		if c.AuthorID == userID {
			return true
		}
	}
	return false
}

func rateInRange(rate *int) bool {
	return rate == nil || (*rate >= MinRate && *rate <= MaxRate)
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
