// Package notify implements the toast channel: ephemeral, severity-tagged
// messages that stack in arrival order and dismiss independently. State is
// display-only and never persisted; each process starts with an empty stack.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity tags a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// DefaultDuration is how long a notification stays up when the caller does
// not say otherwise. A duration of 0 means sticky until dismissed.
const DefaultDuration = 4 * time.Second

// Notification is one entry on the stack.
type Notification struct {
	ID        string
	Message   string
	Severity  Severity
	Duration  time.Duration
	CreatedAt time.Time
}

// Center owns the notification stack. Construct once per process with
// NewCenter and share by reference.
type Center struct {
	mu     sync.Mutex
	active []Notification
	timers map[string]*time.Timer
	subs   []func(Notification)
	now    func() time.Time
}

// NewCenter returns an empty notification center. The clock seam (nil means
// time.Now) exists for tests.
func NewCenter(now func() time.Time) *Center {
	if now == nil {
		now = time.Now
	}
	return &Center{timers: make(map[string]*time.Timer), now: now}
}

// Subscribe registers a renderer callback invoked for every shown
// notification, in arrival order.
func (c *Center) Subscribe(fn func(Notification)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

// Show pushes a notification and returns its id. duration 0 keeps it until
// Dismiss; a positive duration schedules auto-dismissal.
func (c *Center) Show(message string, severity Severity, duration time.Duration) string {
	n := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		Duration:  duration,
		CreatedAt: c.now(),
	}

	c.mu.Lock()
	c.active = append(c.active, n)
	subs := make([]func(Notification), len(c.subs))
	copy(subs, c.subs)
	if duration > 0 {
		c.timers[n.ID] = time.AfterFunc(duration, func() { c.Dismiss(n.ID) })
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(n)
	}
	return n.ID
}

// Dismiss removes a notification by id, whether it came from a timer or from
// the user. Dismissing an unknown id is a no-op.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if timer, ok := c.timers[id]; ok {
		timer.Stop()
		delete(c.timers, id)
	}
	for i, n := range c.active {
		if n.ID == id {
			c.active = append(c.active[:i], c.active[i+1:]...)
			return true
		}
	}
	return false
}

// Active returns the current stack in arrival order.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.active))
	copy(out, c.active)
	return out
}

// Success shows a success notification with the default duration.
func (c *Center) Success(message string) string {
	return c.Show(message, SeveritySuccess, DefaultDuration)
}

// Error shows an error notification with the default duration.
func (c *Center) Error(message string) string {
	return c.Show(message, SeverityError, DefaultDuration)
}

// Warning shows a warning notification with the default duration.
func (c *Center) Warning(message string) string {
	return c.Show(message, SeverityWarning, DefaultDuration)
}

// Info shows an info notification with the default duration.
func (c *Center) Info(message string) string {
	return c.Show(message, SeverityInfo, DefaultDuration)
}
