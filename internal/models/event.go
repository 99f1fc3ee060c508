package models

import "time"

// Event is owned by the events service; only the fields the invitation and
// comment rules need are loaded here.
type Event struct {
	ID           int64        `json:"id"`
	OrganizerID  int64        `json:"organizer_id"`
	Title        string       `json:"title"`
	EndAt        time.Time    `json:"end_at"`
	Participants []Invitation `json:"-"`
	Comments     []Comment    `json:"-"`
}
