package engine

import (
	"strconv"
	"strings"

	"github.com/loadout-gg/loadout/internal/textnorm"
)

var romanLevels = map[string]int{
	"i": 1, "ii": 2, "iii": 3, "iv": 4, "v": 5,
	"vi": 6, "vii": 7, "viii": 8, "ix": 9, "x": 10,
}

// ParseAttributes turns OCR'd skill-list text into an attribute set. Each
// non-empty line is one attribute; a trailing arabic number or roman numeral
// is its level, and lines without one default to level 1. Lines that
// normalize to nothing are skipped. The parse never fails: garbage in,
// fewer attributes out.
func ParseAttributes(raw string) AttributeSet {
	attrs := AttributeSet{}
	for _, line := range strings.Split(raw, "\n") {
		name, level := parseAttributeLine(line)
		if name == "" {
			continue
		}
		attrs[name] = level
	}
	return attrs
}

func parseAttributeLine(line string) (string, int) {
	fields := strings.Fields(textnorm.Normalize(line))
	if len(fields) == 0 {
		return "", 0
	}

	level := 1
	last := fields[len(fields)-1]
	if n, err := strconv.Atoi(last); err == nil {
		if n <= 0 {
			return "", 0
		}
		level = n
		fields = fields[:len(fields)-1]
	} else if n, ok := romanLevels[last]; ok && len(fields) > 1 {
		// A lone numeral is a name, not a level ("V" alone means nothing).
		level = n
		fields = fields[:len(fields)-1]
	}

	name := strings.TrimSuffix(strings.Join(fields, " "), ":")
	name = strings.TrimSpace(name)
	return name, level
}
