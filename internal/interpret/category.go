package interpret

import (
	"strings"

	"trackerd/internal/core"
)

// cueWords are the prepositions that introduce what a transaction was spent
// on or received from. Evaluated in this order; the first one present in the
// text selects the window.
var cueWords = []string{"on", "for", "from", "to", "at"}

// ClassifyCategory maps text to one category from the taxonomy matching the
// resolved type. The ordered rule table is scanned twice: first against the
// window of words following a prepositional cue, then against the full text.
// When neither scan hits a keyword, the type's fallback category is returned.
// Classification never fails.
func (t Taxonomy) ClassifyCategory(text string, tt core.TransactionType) string {
	lower := strings.ToLower(text)
	rules, fallback := t.rulesFor(tt)

	if window := cueWindow(lower); window != "" {
		if category, ok := matchRules(rules, window); ok {
			return category
		}
	}
	if category, ok := matchRules(rules, lower); ok {
		return category
	}
	return fallback
}

// matchRules scans the rule table in order; the first rule whose keyword set
// has a substring hit in text wins.
func matchRules(rules []CategoryRule, text string) (string, bool) {
	for _, rule := range rules {
		if containsAny(text, rule.Keywords) {
			return rule.Category, true
		}
	}
	return "", false
}

// cueWindow returns the words following the first prepositional cue present
// in text, or "" when no cue appears as a standalone word.
func cueWindow(text string) string {
	words := strings.Fields(text)
	for _, cue := range cueWords {
		for i, w := range words {
			if w == cue && i+1 < len(words) {
				return strings.Join(words[i+1:], " ")
			}
		}
	}
	return ""
}
