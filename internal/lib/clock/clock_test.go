package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	t.Parallel()

	at := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	c := At(at)

	assert.True(t, c.Now().Equal(at))
	assert.True(t, c.Now().Equal(c.Now()))
}

func TestRealIsUTC(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.UTC, Real{}.Now().Location())
}
