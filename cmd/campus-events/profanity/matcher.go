package profanity

import (
	"fmt"
	"regexp"
	"strings"

	"campus-events-backend/cmd/campus-events/textnorm"
)

// Denylist is an ordered list of lowercase words or phrases.
type Denylist []string

// IsProfane reports whether text contains a denylist entry as a whole word
// or phrase once normalized. The error is non-nil only when an entry cannot
// be compiled into a pattern.
func IsProfane(text string, denylist Denylist) (bool, error) {
	if text == "" || len(denylist) == 0 {
		return false, nil
	}

	normalized := textnorm.Normalize(text)
	if normalized == "" {
		return false, nil
	}

	tokens := make(map[string]struct{})
	for _, tok := range strings.Fields(normalized) {
		tokens[tok] = struct{}{}
	}
	for _, entry := range denylist {
		if _, ok := tokens[entry]; ok {
			return true, nil
		}
	}

	for _, entry := range denylist {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(entry) + `\b`)
		if err != nil {
			return false, fmt.Errorf("compile denylist entry %q: %w", entry, err)
		}
		if re.MatchString(normalized) {
			return true, nil
		}
	}

	return false, nil
}
