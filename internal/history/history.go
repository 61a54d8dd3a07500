// Package history keeps a bounded record of recent detections for change
// debouncing and aggregate statistics.
package history

import (
	"math"
	"sync"
	"time"

	"github.com/loadout-gg/loadout/internal/catalog"
)

const (
	// DefaultCapacity bounds the number of retained entries.
	DefaultCapacity = 10
	// DefaultEpsilon is the confidence delta below which two detections of
	// the same categories count as unchanged.
	DefaultEpsilon = 0.1
)

// Entry is the recorded view of one detection.
type Entry struct {
	Build      catalog.CategoryID `json:"build"`
	Weapon     catalog.CategoryID `json:"weapon"`
	Profile    string             `json:"profile,omitempty"`
	Confidence float64            `json:"confidence"`
	Timestamp  time.Time          `json:"timestamp"`
}

// Stats aggregates the retained entries.
type Stats struct {
	Total             int                        `json:"total"`
	Builds            map[catalog.CategoryID]int `json:"builds"`
	AverageConfidence float64                    `json:"average_confidence"`
	Last              *Entry                     `json:"last,omitempty"`
}

// History is a fixed-capacity FIFO of detections. Safe for concurrent use.
type History struct {
	mu       sync.Mutex
	capacity int
	epsilon  float64
	entries  []Entry
}

// New creates a history. Non-positive capacity or epsilon fall back to the
// defaults.
func New(capacity int, epsilon float64) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	return &History{capacity: capacity, epsilon: epsilon}
}

// Record appends e, evicting the oldest entry once capacity is exceeded.
func (h *History) Record(e Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, e)
	if len(h.entries) > h.capacity {
		h.entries = h.entries[1:]
	}
}

// Changed reports whether e meaningfully differs from the most recent entry:
// a different build or weapon, or a confidence shift larger than epsilon.
// An empty history always reports changed.
func (h *History) Changed(e Entry) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == 0 {
		return true
	}
	last := h.entries[len(h.entries)-1]
	if e.Build != last.Build || e.Weapon != last.Weapon {
		return true
	}
	return math.Abs(e.Confidence-last.Confidence) > h.epsilon
}

// Len returns the number of retained entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Entries returns a copy of the retained entries, oldest first.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Statistics aggregates the retained entries.
func (h *History) Statistics() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()

	stats := Stats{
		Total:  len(h.entries),
		Builds: make(map[catalog.CategoryID]int),
	}
	if len(h.entries) == 0 {
		return stats
	}

	sum := 0.0
	for _, e := range h.entries {
		stats.Builds[e.Build]++
		sum += e.Confidence
	}
	stats.AverageConfidence = sum / float64(len(h.entries))
	last := h.entries[len(h.entries)-1]
	stats.Last = &last
	return stats
}
