package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystem_Now(t *testing.T) {
	c := NewSystem()

	prev := c.Now()
	for i := 0; i < 1000; i++ {
		now := c.Now()
		assert.False(t, now.Before(prev), "clock went backwards")
		prev = now
	}
	assert.Equal(t, time.UTC, prev.Location())
	assert.Zero(t, prev.Nanosecond()%1000)
}

func TestSystem_NeverGoesBackwards(t *testing.T) {
	c := NewSystem()
	future := time.Now().UTC().Add(time.Hour)
	c.last = future

	assert.Equal(t, future, c.Now())
}
