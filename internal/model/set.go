package model

import (
	"regexp"
	"strings"
)

// Set is a card set (the catalog calls it an "offer type") as served by the
// remote set-catalog endpoint. The display name embeds the set code in
// full-width brackets, e.g. "特别补充包【EBC-04】艾格赫德危机".
type Set struct {
	// Name is the raw display name including the bracketed code.
	Name string `json:"name"`
}

// bracketCodePattern extracts the set code between full-width brackets.
var bracketCodePattern = regexp.MustCompile(`【([^】]+)】`)

// BracketCode returns the set code embedded in the set name, e.g.
// "EBC-04" for "特别补充包【EBC-04】艾格赫德危机". Empty when the name
// carries no bracketed code.
func (s Set) BracketCode() string {
	m := bracketCodePattern.FindStringSubmatch(s.Name)
	if m == nil {
		return ""
	}
	return m[1]
}

// normalizeSetCode bridges the two code conventions the catalog mixes:
// bracket codes like "EBC-04" and "OPC-01" versus the plain "EB04" and
// "OP01" printed on cards. Hyphens and the letter C are stripped before
// comparison. Known limitation: a set whose base letters contain a literal
// C (say "EC01") would normalize ambiguously; no such set exists today.
func normalizeSetCode(code string) string {
	code = strings.ToUpper(code)
	code = strings.ReplaceAll(code, "-", "")
	return strings.ReplaceAll(code, "C", "")
}

// MatchSetName resolves a requested set code ("EB04", "OPC-01") to the
// catalog set whose bracketed code matches. For each set an exact bracket
// comparison is tried before the normalized fallback; the first match wins.
// The boolean result is false when no set matches, which callers treat as a
// fatal usage error before any paging begins.
func MatchSetName(sets []Set, code string) (Set, bool) {
	want := strings.ToUpper(strings.TrimSpace(code))
	wantNorm := normalizeSetCode(want)

	for _, s := range sets {
		inner := s.BracketCode()
		if inner == "" {
			continue
		}
		if strings.ToUpper(inner) == want {
			return s, true
		}
		if normalizeSetCode(inner) == wantNorm {
			return s, true
		}
	}
	return Set{}, false
}
