package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eventPlanner/internal/models"
)

var (
	admin     = Actor{UserID: 100, Roles: []string{"ROLE_USER", RoleAdmin}}
	organizer = Actor{UserID: 1, Roles: []string{"ROLE_USER"}}
	recipient = Actor{UserID: 2, Roles: []string{"ROLE_USER"}}
	stranger  = Actor{UserID: 3, Roles: []string{"ROLE_USER"}}
)

func TestInvitation(t *testing.T) {
	t.Parallel()

	event := models.Event{ID: 10, OrganizerID: organizer.UserID}
	inv := models.Invitation{ID: 5, EventID: 10, RecipientID: recipient.UserID}

	testCases := []struct {
		actor  Actor
		action Action
		want   bool
	}{
		{admin, Create, true},
		{admin, Confirm, true},
		{admin, Purge, true},
		{organizer, Create, true},
		{organizer, Update, true},
		{organizer, Delete, true},
		{organizer, Confirm, false},
		{organizer, Purge, false},
		{recipient, Confirm, true},
		{recipient, Update, false},
		{recipient, Create, false},
		{stranger, Read, true},
		{stranger, Confirm, false},
		{stranger, Delete, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, Invitation(tc.actor, tc.action, inv, event),
			"actor %d action %s", tc.actor.UserID, tc.action)
	}
}

func TestComment(t *testing.T) {
	t.Parallel()

	c := models.Comment{ID: 1, AuthorID: recipient.UserID}

	assert.True(t, Comment(stranger, Create, c))
	assert.True(t, Comment(recipient, Update, c))
	assert.True(t, Comment(recipient, Delete, c))
	assert.False(t, Comment(recipient, Purge, c))
	assert.False(t, Comment(stranger, Update, c))
	assert.False(t, Comment(stranger, Delete, c))
	assert.True(t, Comment(admin, Update, c))
}

func TestPlace(t *testing.T) {
	t.Parallel()

	assert.True(t, Place(stranger, Create))
	assert.True(t, Place(stranger, Update))
	assert.False(t, Place(stranger, Delete))
	assert.True(t, Place(admin, Delete))
}
