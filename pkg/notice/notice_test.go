package notice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowReplacesCurrent(t *testing.T) {
	c := NewCenter(time.Minute)

	c.Error("first")
	c.Success("second")

	current := c.Current()
	require.NotNil(t, current)
	assert.Equal(t, "second", current.Message)
	assert.Equal(t, SeveritySuccess, current.Severity)
}

func TestDismissClears(t *testing.T) {
	c := NewCenter(time.Minute)

	c.Info("hello")
	c.Dismiss()

	assert.Nil(t, c.Current())
}

func TestAutoDismissAfterDuration(t *testing.T) {
	c := NewCenter(20 * time.Millisecond)

	c.Warning("soon gone")
	require.NotNil(t, c.Current())

	assert.Eventually(t, func() bool {
		return c.Current() == nil
	}, time.Second, 5*time.Millisecond)
}

func TestOnChangeNotified(t *testing.T) {
	c := NewCenter(time.Minute)

	var events []*Notice
	c.OnChange(func(n *Notice) { events = append(events, n) })

	c.Error("boom")
	c.Dismiss()

	require.Len(t, events, 2)
	assert.Equal(t, "boom", events[0].Message)
	assert.Nil(t, events[1])
}

func TestZeroDurationFallsBackToDefault(t *testing.T) {
	c := NewCenter(0)
	assert.Equal(t, DefaultDuration, c.duration)
}
