package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventPlanner/internal/models"
)

func validPlace() models.Place {
	return models.Place{
		Name:       "Le Bataclan",
		StreetName: "Boulevard Voltaire",
		City:       "Paris",
		PostalCode: "75011",
		Country:    "France",
	}
}

func TestCheckPlace(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		mutate     func(p *models.Place)
		wantFields []string
	}{
		{
			name:   "Valid",
			mutate: func(p *models.Place) {},
		},
		{
			name: "Street number is optional",
			mutate: func(p *models.Place) {
				n := "50"
				p.StreetNumber = &n
			},
		},
		{
			name:       "Blank name",
			mutate:     func(p *models.Place) { p.Name = "   " },
			wantFields: []string{"name"},
		},
		{
			name:       "Postal code too short",
			mutate:     func(p *models.Place) { p.PostalCode = "75" },
			wantFields: []string{"postal_code"},
		},
		{
			name:       "Postal code too long",
			mutate:     func(p *models.Place) { p.PostalCode = "12345678901234567" },
			wantFields: []string{"postal_code"},
		},
		{
			name: "Several missing fields",
			mutate: func(p *models.Place) {
				p.City = ""
				p.Country = ""
			},
			wantFields: []string{"city", "country"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := validPlace()
			tc.mutate(&p)

			err := CheckPlace(p)
			if len(tc.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvariant)

			var fields []string
			for _, v := range Violations(err) {
				fields = append(fields, v.Field)
			}
			assert.ElementsMatch(t, tc.wantFields, fields)
		})
	}
}

func TestNewPlace(t *testing.T) {
	t.Parallel()

	now := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)

	p, err := NewPlace(validPlace(), nil, now)
	require.NoError(t, err)
	assert.Equal(t, now, p.CreatedAt)
	assert.Nil(t, p.UpdatedAt)

	holder := validPlace()
	holder.ID = 4
	_, err = NewPlace(validPlace(), &holder, now)
	assert.ErrorIs(t, err, ErrDuplicate)
	list := Violations(err)
	require.Len(t, list, 1)
	assert.Equal(t, "name", list[0].Field)
}

func TestRevisePlace(t *testing.T) {
	t.Parallel()

	now := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	current := validPlace()
	current.ID = 4

	update := validPlace()
	update.City = "Lyon"

	revised, err := RevisePlace(current, update, &current, now)
	require.NoError(t, err)
	assert.Equal(t, "Lyon", revised.City)
	assert.Equal(t, int64(4), revised.ID)
	require.NotNil(t, revised.UpdatedAt)

	other := validPlace()
	other.ID = 5
	_, err = RevisePlace(current, update, &other, now)
	assert.ErrorIs(t, err, ErrDuplicate)
}
