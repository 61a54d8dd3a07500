package history

import (
	"testing"
	"time"

	"github.com/loadout-gg/loadout/internal/catalog"
)

func entry(build, weapon string, conf float64) Entry {
	return Entry{
		Build:      catalog.CategoryID(build),
		Weapon:     catalog.CategoryID(weapon),
		Confidence: conf,
		Timestamp:  time.Now(),
	}
}

func TestRecordEvictsOldest(t *testing.T) {
	h := New(3, 0.1)
	for i := 0; i < 4; i++ {
		h.Record(Entry{Build: "rifleman", Confidence: float64(i)})
	}
	if h.Len() != 3 {
		t.Fatalf("expected capacity 3, got %d", h.Len())
	}
	entries := h.Entries()
	if entries[0].Confidence != 1 {
		t.Fatalf("expected oldest entry evicted, first confidence = %v", entries[0].Confidence)
	}
	if entries[2].Confidence != 3 {
		t.Fatalf("expected newest entry present, last confidence = %v", entries[2].Confidence)
	}
}

func TestChanged(t *testing.T) {
	h := New(10, 0.1)

	first := entry("rifleman", "rifle", 0.8)
	if !h.Changed(first) {
		t.Fatal("empty history must report changed")
	}
	h.Record(first)

	if h.Changed(entry("rifleman", "rifle", 0.85)) {
		t.Fatal("confidence within epsilon must not report changed")
	}
	if !h.Changed(entry("rifleman", "rifle", 0.5)) {
		t.Fatal("confidence beyond epsilon must report changed")
	}

	other := first
	other.Weapon = "pistol"
	if !h.Changed(other) {
		t.Fatal("different weapon must report changed")
	}
	other = first
	other.Build = "medic"
	if !h.Changed(other) {
		t.Fatal("different build must report changed")
	}
}

func TestStatistics(t *testing.T) {
	h := New(10, 0.1)
	if s := h.Statistics(); s.Total != 0 || s.Last != nil {
		t.Fatalf("empty stats = %+v", s)
	}

	h.Record(Entry{Build: "rifleman", Confidence: 1.0})
	h.Record(Entry{Build: "rifleman", Confidence: 0.5})
	h.Record(Entry{Build: "medic", Confidence: 0.75})

	s := h.Statistics()
	if s.Total != 3 {
		t.Fatalf("total = %d", s.Total)
	}
	if s.Builds["rifleman"] != 2 || s.Builds["medic"] != 1 {
		t.Fatalf("builds = %v", s.Builds)
	}
	if s.AverageConfidence != 0.75 {
		t.Fatalf("average confidence = %v", s.AverageConfidence)
	}
	if s.Last == nil || s.Last.Build != "medic" {
		t.Fatalf("last = %+v", s.Last)
	}
}

func TestDefaults(t *testing.T) {
	h := New(0, 0)
	for i := 0; i < DefaultCapacity+1; i++ {
		h.Record(Entry{Build: "rifleman"})
	}
	if h.Len() != DefaultCapacity {
		t.Fatalf("expected default capacity %d, got %d", DefaultCapacity, h.Len())
	}
}
