// Package household partitions person candidates into candidate households,
// collapses duplicate people, assigns main-contact roles, and scores the
// engine's own confidence in each inferred grouping.
//
// Deduplication is a greedy single pass over exact normalized tuples, not a
// graph clustering: two near-duplicates that differ only in which contact
// field is filled are intentionally kept apart and left for the reviewer.
// Role assignment is order-dependent on purpose, the first member who
// volunteered contact info is presumed head of household
package household

import (
	"sort"
	"strings"

	"hearth/internal/core/roster"

	"github.com/google/uuid"
)

// EngineVersion tags the grouping heuristics so stored review output can be
// traced back to the rules that produced it
const EngineVersion = 1

// Confidence is a qualitative estimate of how trustworthy an inferred
// grouping is, used to prioritize human review
type Confidence string

// Confidence bands, ordered most-review-worthy first
const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// rank orders confidence for the reviewer sort, lowest first
func (c Confidence) rank() int {
	switch c {
	case ConfidenceLow:
		return 0
	case ConfidenceMedium:
		return 1
	default:
		return 2
	}
}

// unknownKey groups candidates lacking a surname
const unknownKey = "unknown"

// Candidate is one inferred household, the unit handed to the reviewer.
// ID is run-scoped; Reviewed, Confirmed, and AlreadyImported are set outside
// the engine and default false
type Candidate struct {
	ID              string                   `json:"id"`
	SuggestedName   string                   `json:"suggestedName"`
	Members         []roster.PersonCandidate `json:"members"`
	Confidence      Confidence               `json:"confidence"`
	Reviewed        bool                     `json:"reviewed"`
	Confirmed       bool                     `json:"confirmed"`
	AlreadyImported bool                     `json:"alreadyImported"`
}

// Group partitions candidates by normalized surname and runs each partition
// through dedup, role assignment, labelling, and confidence scoring. The
// result is sorted low, medium, high so the groupings most in need of human
// correction surface first; ordering is deterministic for a given input
func Group(people []roster.PersonCandidate) []Candidate {
	if len(people) == 0 {
		return nil
	}

	// partition keyed by lowercased surname, preserving first-seen key order
	buckets := map[string][]roster.PersonCandidate{}
	var order []string
	for _, p := range people {
		key := strings.ToLower(strings.TrimSpace(p.LastName))
		if key == "" {
			key = unknownKey
		}
		if _, ok := buckets[key]; !ok {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], p)
	}

	out := make([]Candidate, 0, len(order))
	for _, key := range order {
		members := assignRoles(dedupe(buckets[key]))
		hh := Candidate{
			ID:            uuid.NewString(),
			SuggestedName: label(members),
			Members:       members,
			Confidence:    score(members),
		}
		out = append(out, hh)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence.rank() < out[j].Confidence.rank()
	})
	return out
}

// dedupe collapses candidates representing the same person. Two candidates
// are the same iff their (first, last, email, mobile) tuples are identical
// after case folding, absent comparing equal only to absent. The survivor is
// whichever has strictly more contact fields; ties keep the first seen
func dedupe(in []roster.PersonCandidate) []roster.PersonCandidate {
	kept := make([]roster.PersonCandidate, 0, len(in))
	index := map[string]int{} // identity tuple -> position in kept

	for _, p := range in {
		key := identityKey(p)
		at, seen := index[key]
		if !seen {
			index[key] = len(kept)
			kept = append(kept, p)
			continue
		}
		if p.ContactFields() > kept[at].ContactFields() {
			kept[at] = p
		}
	}
	return kept
}

// identityKey builds the normalized comparison tuple
func identityKey(p roster.PersonCandidate) string {
	parts := []string{p.FirstName, p.LastName, p.Email, p.Mobile}
	for i, s := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(s))
	}
	return strings.Join(parts, "\x1f")
}

// assignRoles marks the first two members with any contact info, in original
// order, as main contact 1 and 2. Everyone else carries no role
func assignRoles(members []roster.PersonCandidate) []roster.PersonCandidate {
	seen := 0
	for i := range members {
		members[i].IsMainContact1 = false
		members[i].IsMainContact2 = false
		if !members[i].HasContact() {
			continue
		}
		switch seen {
		case 0:
			members[i].IsMainContact1 = true
		case 1:
			members[i].IsMainContact2 = true
		}
		seen++
	}
	return members
}

// label builds the human-readable household name from the main contacts,
// falling back to the first member's surname
func label(members []roster.PersonCandidate) string {
	var c1, c2 *roster.PersonCandidate
	for i := range members {
		if members[i].IsMainContact1 {
			c1 = &members[i]
		}
		if members[i].IsMainContact2 {
			c2 = &members[i]
		}
	}

	switch {
	case c1 != nil && c2 != nil:
		if strings.EqualFold(c1.LastName, c2.LastName) {
			return surnameOr(c1.LastName, c2.LastName) + " Family"
		}
		return c1.LastName + " & " + c2.LastName
	case c1 != nil:
		return surnameOr(c1.LastName, "") + " Family"
	default:
		fallback := "Unknown"
		if len(members) > 0 && members[0].LastName != "" {
			fallback = members[0].LastName
		}
		return fallback + " Family"
	}
}

// surnameOr prefers a, then b, then "Unknown"
func surnameOr(a, b string) string {
	if a != "" {
		return a
	}
	if b != "" {
		return b
	}
	return "Unknown"
}

// score applies the confidence bands: seven or more members smells like a
// surname collision (low); five or six, or a household with no reachable
// member, needs a closer look (medium); small groups with contact info are
// trusted (high)
func score(members []roster.PersonCandidate) Confidence {
	anyContact := false
	for _, m := range members {
		if m.HasContact() {
			anyContact = true
			break
		}
	}
	// a fully unreachable household is a review problem before it is a
	// size problem, whatever the member count
	if !anyContact {
		return ConfidenceMedium
	}
	if len(members) >= 7 {
		return ConfidenceLow
	}
	if len(members) >= 5 {
		return ConfidenceMedium
	}
	return ConfidenceHigh
}
