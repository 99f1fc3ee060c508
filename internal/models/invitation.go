package models

import "time"

type Invitation struct {
	ID          int64      `json:"id"`
	EventID     int64      `json:"event_id"`
	RecipientID int64      `json:"recipient_id"`
	Confirmed   bool       `json:"confirmed"`
	ExpireAt    *time.Time `json:"expire_at"`
	Expired     bool       `json:"expired"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`

	// EventEndAt is the end of the invited event, the expiry fallback.
	EventEndAt time.Time `json:"-"`
}

type InvitationFilter struct {
	ID          *int64
	EventID     *int64
	RecipientID *int64
	Confirmed   *bool
	Expired     *bool
	ExpireAt    DateRange
}
