package query

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventPlanner/internal/models"
)

var parser = Parser{DefaultItemsPerPage: 30, MaxItemsPerPage: 100}

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()

	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestParser_Invitations(t *testing.T) {
	t.Parallel()

	u := mustURL(t, "/invitations?event=/events/3&recipient=7&confirmed=false&expired=1"+
		"&expireAt[strictly_after]=2023-01-01&order[createdAt]=desc&order[id]=asc&page=2&itemsPerPage=500")

	q, err := parser.Invitations(u)
	require.NoError(t, err)

	require.NotNil(t, q.Filter.EventID)
	assert.Equal(t, int64(3), *q.Filter.EventID)
	require.NotNil(t, q.Filter.RecipientID)
	assert.Equal(t, int64(7), *q.Filter.RecipientID)
	require.NotNil(t, q.Filter.Confirmed)
	assert.False(t, *q.Filter.Confirmed)
	require.NotNil(t, q.Filter.Expired)
	assert.True(t, *q.Filter.Expired)
	assert.Nil(t, q.Filter.ID)

	require.NotNil(t, q.Filter.ExpireAt.StrictlyAfter)
	assert.True(t, q.Filter.ExpireAt.StrictlyAfter.Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Nil(t, q.Filter.ExpireAt.Before)

	assert.Equal(t, []models.Order{{Field: "createdAt", Desc: true}, {Field: "id"}}, q.Order)
	assert.Equal(t, models.Page{Number: 2, ItemsPerPage: 100}, q.Page)
}

func TestParser_Defaults(t *testing.T) {
	t.Parallel()

	q, err := parser.Comments(mustURL(t, "/comments"))
	require.NoError(t, err)

	assert.Equal(t, models.Page{Number: 1, ItemsPerPage: 30}, q.Page)
	assert.Empty(t, q.Order)
	assert.Equal(t, models.CommentFilter{}, q.Filter)
}

func TestParser_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		raw   string
		param string
	}{
		{"Bad event", "/invitations?event=abc", "event"},
		{"Bad boolean", "/invitations?confirmed=maybe", "confirmed"},
		{"Bad date", "/invitations?expireAt[before]=yesterday", "expireAt[before]"},
		{"Bad page", "/invitations?page=0", "page"},
		{"Bad items per page", "/invitations?itemsPerPage=-1", "itemsPerPage"},
		{"Zero items per page", "/invitations?itemsPerPage=0", "itemsPerPage"},
		{"Page offset overflows", "/invitations?page=922337203685477581&itemsPerPage=100", "page"},
		{"Bad direction", "/invitations?order[id]=sideways", "order[id]"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := parser.Invitations(mustURL(t, tc.raw))
			require.Error(t, err)

			var qErr *Error
			require.ErrorAs(t, err, &qErr)
			assert.Equal(t, tc.param, qErr.Param)
		})
	}
}

func TestParser_Places(t *testing.T) {
	t.Parallel()

	q, err := parser.Places(mustURL(t, "/places?city=Par&postalCode=750&order[name]=asc"))
	require.NoError(t, err)

	assert.Equal(t, "Par", q.Filter.City)
	assert.Equal(t, "750", q.Filter.PostalCode)
	assert.Equal(t, []models.Order{{Field: "name"}}, q.Order)
}

func TestParser_CommentsRate(t *testing.T) {
	t.Parallel()

	q, err := parser.Comments(mustURL(t, "/comments?rate=4&content=great&author=2"))
	require.NoError(t, err)

	require.NotNil(t, q.Filter.Rate)
	assert.Equal(t, 4, *q.Filter.Rate)
	assert.Equal(t, "great", q.Filter.Content)
	require.NotNil(t, q.Filter.AuthorID)
	assert.Equal(t, int64(2), *q.Filter.AuthorID)
}

func TestParser_LargestPage(t *testing.T) {
	t.Parallel()

	page, err := parser.Page(url.Values{"page": {"1000000"}, "itemsPerPage": {"100"}})
	require.NoError(t, err)

	assert.Equal(t, 1000000, page.Number)
	assert.Equal(t, 99999900, page.Offset())
}
