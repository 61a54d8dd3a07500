package engine

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/loadout-gg/loadout/internal/catalog"
	"github.com/loadout-gg/loadout/internal/history"
)

// Result is one completed scoring pass. Immutable once returned.
type Result struct {
	Profile    *catalog.Profile   `json:"profile,omitempty"`
	Build      catalog.CategoryID `json:"build"`
	Weapon     catalog.CategoryID `json:"weapon"`
	Style      catalog.CategoryID `json:"style"`
	RankScore  float64            `json:"rank_score"`
	Confidence float64            `json:"confidence"`
	Matched    []string           `json:"matched_attributes,omitempty"`
	Timestamp  time.Time          `json:"timestamp"`
}

// Options configure an Engine. Zero values fall back to the defaults.
type Options struct {
	MatchThreshold float64
	HistorySize    int
	ChangeEpsilon  float64
}

// Engine runs the detection pipeline against the live catalogs and keeps the
// detection history. Create one per process and pass it where needed; there
// is no package-level instance.
type Engine struct {
	store     *catalog.Store
	hist      *history.History
	threshold float64
	log       zerolog.Logger
}

// New creates an Engine over the given catalog store.
func New(store *catalog.Store, opts Options) *Engine {
	threshold := opts.MatchThreshold
	if threshold <= 0 {
		threshold = DefaultMatchThreshold
	}
	return &Engine{
		store:     store,
		hist:      history.New(opts.HistorySize, opts.ChangeEpsilon),
		threshold: threshold,
		log:       log.With().Str("component", "engine").Logger(),
	}
}

// History exposes the detection history for statistics queries.
func (e *Engine) History() *history.History {
	return e.hist
}

// DetectText parses raw OCR text into attributes and runs Detect.
func (e *Engine) DetectText(raw string) (Result, bool) {
	return e.Detect(ParseAttributes(raw))
}

// Detect scores attrs against the pattern catalog, ranks the profile
// catalog, records the outcome, and reports whether it meaningfully differs
// from the previous detection.
func (e *Engine) Detect(attrs AttributeSet) (Result, bool) {
	patterns := e.store.Patterns()

	buildSpace, _ := patterns.Space(catalog.SpaceBuild)
	weaponSpace, _ := patterns.Space(catalog.SpaceWeapon)
	styleSpace, _ := patterns.Space(catalog.SpaceStyle)

	det := Detection{Attributes: attrs}
	det.Build, _ = BestCategory(attrs, buildSpace)
	det.Weapon, _ = BestCategory(attrs, weaponSpace)
	det.Style, _ = BestCategory(attrs, styleSpace)

	buildCat, _ := buildSpace.Category(det.Build)
	weaponCat, _ := weaponSpace.Category(det.Weapon)

	res := Result{
		Build:      det.Build,
		Weapon:     det.Weapon,
		Style:      det.Style,
		Confidence: Confidence(attrs, buildCat, weaponCat),
		Matched:    MatchedAttributes(attrs, buildCat, weaponCat),
		Timestamp:  time.Now(),
	}

	if profile, score := Rank(det, e.store.Profiles(), e.threshold); profile != nil {
		p := *profile
		res.Profile = &p
		res.RankScore = score
	}

	entry := history.Entry{
		Build:      res.Build,
		Weapon:     res.Weapon,
		Confidence: res.Confidence,
		Timestamp:  res.Timestamp,
	}
	if res.Profile != nil {
		entry.Profile = res.Profile.Name
	}
	changed := e.hist.Changed(entry)
	e.hist.Record(entry)

	evt := e.log.Debug().
		Str("build", string(res.Build)).
		Str("weapon", string(res.Weapon)).
		Str("style", string(res.Style)).
		Float64("confidence", res.Confidence).
		Bool("changed", changed)
	if res.Profile != nil {
		evt = evt.Str("profile", res.Profile.Name)
	}
	evt.Msg("detection complete")

	return res, changed
}
