package progress

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// barWidth is the number of cells between the brackets
const barWidth = 30

// Tracker draws one progress bar per running batch, for example a directory scan
type Tracker struct {
	mu         sync.Mutex
	bars       map[string]*Bar
	output     io.Writer
	interval   time.Duration
	lastRender time.Time
}

// Bar is the state of a single batch
type Bar struct {
	ID          string
	Description string
	Done        int
	Total       int
	Updated     time.Time
}

// Percent returns how much of the batch is done, 0..100
func (b *Bar) Percent() float64 {
	if b.Total <= 0 {
		return 0
	}
	return float64(b.Done) / float64(b.Total) * 100.0
}

// NewTracker creates a tracker writing to stdout
func NewTracker() *Tracker {
	return NewTrackerWriter(os.Stdout, 100*time.Millisecond)
}

// NewTrackerWriter creates a tracker writing to w. Step redraws at most once per interval.
func NewTrackerWriter(w io.Writer, interval time.Duration) *Tracker {
	return &Tracker{
		bars:     make(map[string]*Bar),
		output:   w,
		interval: interval,
	}
}

// Start begins tracking a batch of total items
func (t *Tracker) Start(id, description string, total int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.bars[id] = &Bar{
		ID:          id,
		Description: description,
		Total:       total,
		Updated:     time.Now(),
	}
	t.render()
}

// Step marks one more item of the batch as done
func (t *Tracker) Step(id, description string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	bar, ok := t.bars[id]
	if !ok {
		return
	}
	if bar.Done < bar.Total {
		bar.Done++
	}
	if description != "" {
		bar.Description = description
	}
	bar.Updated = time.Now()

	if time.Since(t.lastRender) >= t.interval {
		t.render()
	}
}

// Complete prints a final line for the batch and stops tracking it
func (t *Tracker) Complete(id, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	bar, ok := t.bars[id]
	if !ok {
		return
	}
	if message == "" {
		message = bar.Description
	}
	fmt.Fprintf(t.output, "%s: %s [%d/%d complete]\n", id, message, bar.Done, bar.Total)
	delete(t.bars, id)
}

// Snapshot returns a copy of the bar for id
func (t *Tracker) Snapshot(id string) (Bar, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	bar, ok := t.bars[id]
	if !ok {
		return Bar{}, false
	}
	return *bar, true
}

func (t *Tracker) render() {
	ids := make([]string, 0, len(t.bars))
	for id := range t.bars {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		bar := t.bars[id]
		desc := bar.Description
		if len(desc) > 50 {
			desc = desc[:47] + "..."
		}
		fmt.Fprintf(t.output, "%s: %s %5.1f%% %s\n", id, Render(bar.Percent()), bar.Percent(), desc)
	}
	t.lastRender = time.Now()
}

// Render draws a bar like [=========>          ] for percent in 0..100
func Render(percent float64) string {
	completed := int(percent / 100.0 * barWidth)
	completed = max(0, min(barWidth, completed))

	var sb strings.Builder
	sb.Grow(barWidth + 2)
	sb.WriteByte('[')
	for i := 0; i < barWidth; i++ {
		switch {
		case i < completed:
			sb.WriteByte('=')
		case i == completed:
			sb.WriteByte('>')
		default:
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
