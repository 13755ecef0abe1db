package notice

import (
	"sync"
	"time"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// DefaultDuration matches the UI toast auto-hide of 6 seconds.
const DefaultDuration = 6 * time.Second

type Notice struct {
	Message  string
	Severity Severity
	ShownAt  time.Time
}

// Center holds the single transient notice and dismisses it after a
// fixed duration. Showing a new notice replaces the current one.
type Center struct {
	mu       sync.Mutex
	current  *Notice
	timer    *time.Timer
	duration time.Duration
	onChange func(*Notice)
}

func NewCenter(duration time.Duration) *Center {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Center{duration: duration}
}

// OnChange registers a callback invoked with the new notice, or nil on
// dismissal. The render layer subscribes here.
func (c *Center) OnChange(fn func(*Notice)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

func (c *Center) Show(message string, severity Severity) {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
	}
	n := &Notice{Message: message, Severity: severity, ShownAt: time.Now()}
	c.current = n
	c.timer = time.AfterFunc(c.duration, c.Dismiss)
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(n)
	}
}

func (c *Center) Info(message string)    { c.Show(message, SeverityInfo) }
func (c *Center) Success(message string) { c.Show(message, SeveritySuccess) }
func (c *Center) Warning(message string) { c.Show(message, SeverityWarning) }
func (c *Center) Error(message string)   { c.Show(message, SeverityError) }

func (c *Center) Dismiss() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.current = nil
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(nil)
	}
}

// Current returns the active notice, or nil when none is shown.
func (c *Center) Current() *Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}
