package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual(t *testing.T) {
	start := time.Unix(1000, 0)
	m := NewManual(start)
	assert.Equal(t, start, m.Now())

	m.Advance(250 * time.Millisecond)
	assert.Equal(t, start.Add(250*time.Millisecond), m.Now())

	m.Set(start)
	assert.Equal(t, start, m.Now())
}
