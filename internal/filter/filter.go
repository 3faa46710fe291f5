// Package filter implements the event feed's search, club filter and
// sort pipeline. It is pure: callers hand it a snapshot of events and
// get back a new ordering without the input being modified.
package filter

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/eventifyseu/eventify-web/pkg/model"
)

// Sort names a feed ordering.
type Sort string

const (
	// SortDate orders newest first.
	SortDate Sort = "date"
	// SortName orders by event name ascending.
	SortName Sort = "name"
	// SortClub orders by club name ascending.
	SortClub Sort = "club"
)

// Valid reports whether s is a known sort key.
func (s Sort) Valid() bool {
	switch s {
	case SortDate, SortName, SortClub:
		return true
	}
	return false
}

// AllClubs is the club filter value that matches every event.
const AllClubs = "all"

// State holds the three feed controls. The zero value is not meaningful;
// use DefaultState.
type State struct {
	Search string
	Club   string
	Sort   Sort
}

// DefaultState returns the controls as a fresh feed shows them: no
// search text, all clubs, newest first.
func DefaultState() State {
	return State{Search: "", Club: AllClubs, Sort: SortDate}
}

// Normalize fills invalid or missing control values with their
// defaults. Query parameters pass through here before use.
func Normalize(s State) State {
	if s.Club == "" {
		s.Club = AllClubs
	}
	if !s.Sort.Valid() {
		s.Sort = SortDate
	}
	return s
}

// Reset puts all controls back to their defaults. The event collection
// is untouched; only the view state changes.
func (s *State) Reset() {
	*s = DefaultState()
}

// Active reports whether any control differs from its default.
func (s State) Active() bool {
	return s.Search != "" || s.Club != AllClubs || s.Sort != SortDate
}

// dateLayouts are the timestamp shapes the API has been observed to
// emit for event dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// matches reports whether the event survives the search and club
// controls. Search is a case-insensitive substring match over the event
// name, description and club name. The club control is an exact match
// on the club name.
func matches(e model.Event, state State) bool {
	if state.Club != AllClubs && e.Club.Name != state.Club {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(state.Search))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.Description), q) ||
		strings.Contains(strings.ToLower(e.Club.Name), q)
}

// Apply filters and orders a snapshot of events according to state.
// The input slice is never modified. The sort is stable, so events that
// compare equal keep their arrival order.
func Apply(events []model.Event, state State) []model.Event {
	state = Normalize(state)

	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if matches(e, state) {
			out = append(out, e)
		}
	}

	// Collators are not safe for concurrent use, so each call builds
	// its own.
	coll := collate.New(language.English, collate.IgnoreCase)

	switch state.Sort {
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return coll.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortClub:
		sort.SliceStable(out, func(i, j int) bool {
			return coll.CompareString(out[i].Club.Name, out[j].Club.Name) < 0
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return dateLess(out[j].Date, out[i].Date)
		})
	}

	return out
}

// dateLess orders parseable dates chronologically. An unparseable date
// sorts as older than any parseable one, which pushes malformed records
// to the bottom of a newest-first feed instead of dropping them.
func dateLess(a, b string) bool {
	ta, okA := parseDate(a)
	tb, okB := parseDate(b)
	switch {
	case okA && okB:
		return ta.Before(tb)
	case !okA && okB:
		return true
	default:
		return false
	}
}

// Clubs returns the distinct club names across events, in first-seen
// order. The feed's club dropdown is built from this.
func Clubs(events []model.Event) []string {
	seen := make(map[string]struct{}, len(events))
	names := make([]string, 0, len(events))
	for _, e := range events {
		if e.Club.Name == "" {
			continue
		}
		if _, ok := seen[e.Club.Name]; ok {
			continue
		}
		seen[e.Club.Name] = struct{}{}
		names = append(names, e.Club.Name)
	}
	return names
}
