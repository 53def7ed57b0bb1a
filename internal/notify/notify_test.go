package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenter_StackInArrivalOrder(t *testing.T) {
	c := NewCenter(nil)

	c.Show("first", SeverityInfo, 0)
	c.Show("second", SeverityError, 0)
	c.Show("third", SeveritySuccess, 0)

	active := c.Active()
	require.Len(t, active, 3)
	assert.Equal(t, "first", active[0].Message)
	assert.Equal(t, "second", active[1].Message)
	assert.Equal(t, "third", active[2].Message)
}

func TestCenter_DismissRemovesOnlyTarget(t *testing.T) {
	c := NewCenter(nil)

	c.Show("keep-a", SeverityInfo, 0)
	id := c.Show("drop", SeverityWarning, 0)
	c.Show("keep-b", SeverityInfo, 0)

	assert.True(t, c.Dismiss(id))
	assert.False(t, c.Dismiss(id), "second dismissal of same id is a no-op")

	active := c.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "keep-a", active[0].Message)
	assert.Equal(t, "keep-b", active[1].Message)
}

func TestCenter_HelpersUseDefaultDuration(t *testing.T) {
	c := NewCenter(nil)

	c.Success("ok")
	c.Error("bad")
	c.Warning("hmm")
	c.Info("fyi")

	active := c.Active()
	require.Len(t, active, 4)
	severities := []Severity{SeveritySuccess, SeverityError, SeverityWarning, SeverityInfo}
	for i, n := range active {
		assert.Equal(t, severities[i], n.Severity)
		assert.Equal(t, DefaultDuration, n.Duration)
	}
}

func TestCenter_AutoDismissAfterDuration(t *testing.T) {
	c := NewCenter(nil)

	c.Show("ephemeral", SeverityInfo, 20*time.Millisecond)
	require.Len(t, c.Active(), 1)

	assert.Eventually(t, func() bool {
		return len(c.Active()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestCenter_StickyStaysUntilDismissed(t *testing.T) {
	c := NewCenter(nil)

	id := c.Show("sticky", SeverityWarning, 0)
	time.Sleep(30 * time.Millisecond)
	require.Len(t, c.Active(), 1)

	c.Dismiss(id)
	assert.Empty(t, c.Active())
}

func TestCenter_SubscriberSeesEveryShow(t *testing.T) {
	c := NewCenter(nil)

	var got []string
	c.Subscribe(func(n Notification) { got = append(got, n.Message) })

	c.Info("one")
	c.Error("two")

	assert.Equal(t, []string{"one", "two"}, got)
}
