package progress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "["+">"+strings.Repeat(" ", 29)+"]", Render(0))
	assert.Equal(t, "["+strings.Repeat("=", 15)+">"+strings.Repeat(" ", 14)+"]", Render(50))
	assert.Equal(t, "["+strings.Repeat("=", 30)+"]", Render(100))
	assert.Equal(t, Render(100), Render(250))
	assert.Equal(t, Render(0), Render(-5))
}

func TestTrackerBatch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tracker := NewTrackerWriter(&buf, 0)

	tracker.Start("scan", "images", 4)
	tracker.Step("scan", "a.png")
	tracker.Step("scan", "b.png")

	bar, ok := tracker.Snapshot("scan")
	require.True(t, ok)
	assert.Equal(t, 2, bar.Done)
	assert.InDelta(t, 50, bar.Percent(), 1e-9)
	assert.Equal(t, "b.png", bar.Description)
	assert.Contains(t, buf.String(), " 50.0% b.png")

	tracker.Step("scan", "")
	tracker.Step("scan", "")
	tracker.Step("scan", "")
	bar, _ = tracker.Snapshot("scan")
	assert.Equal(t, 4, bar.Done, "never past the total")

	tracker.Complete("scan", "done")
	assert.Contains(t, buf.String(), "scan: done [4/4 complete]\n")
	_, ok = tracker.Snapshot("scan")
	assert.False(t, ok)
}

func TestTrackerUnknownID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tracker := NewTrackerWriter(&buf, 0)
	tracker.Step("missing", "x")
	tracker.Complete("missing", "x")
	assert.Empty(t, buf.String())
}

func TestBarPercentEmpty(t *testing.T) {
	t.Parallel()

	assert.Zero(t, (&Bar{}).Percent())
}
