package tui

import (
	"strings"
	"sync"
)

// LogRing is an io.Writer that keeps the most recent log lines so the
// watch view can show resolution attempts as they happen. The logger
// writes from the program goroutine while bubbletea renders from its own,
// so access is guarded.
type LogRing struct {
	mu    sync.Mutex
	lines []string
	max   int
}

// NewLogRing creates a ring keeping up to max lines.
func NewLogRing(max int) *LogRing {
	if max <= 0 {
		max = 8
	}
	return &LogRing{max: max}
}

// Write appends complete lines to the ring, dropping the oldest beyond
// the capacity.
func (r *LogRing) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r.lines = append(r.lines, line)
	}
	if overflow := len(r.lines) - r.max; overflow > 0 {
		r.lines = r.lines[overflow:]
	}
	return len(p), nil
}

// Lines returns a snapshot of the retained lines, oldest first.
func (r *LogRing) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}
