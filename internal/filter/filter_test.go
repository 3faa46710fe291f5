package filter

import (
	"reflect"
	"testing"

	"github.com/eventifyseu/eventify-web/pkg/model"
)

func event(name, description, club, date string) model.Event {
	return model.Event{
		Name:        name,
		Description: description,
		Date:        date,
		Club:        model.Club{Name: club},
	}
}

func names(events []model.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Name
	}
	return out
}

var feed = []model.Event{
	event("Robotics Workshop", "build line followers", "Robotics Club", "2024-03-10T18:00"),
	event("Spring Gala", "annual formal dinner", "Student Council", "2024-05-01T19:30"),
	event("Intro to Go", "systems programming talk", "Computing Society", "2024-01-20"),
	event("Chess Blitz", "rapid tournament", "Chess Club", "2024-05-01T19:30"),
	event("Open Mic Night", "poetry and music", "Student Council", "2024-02-14T20:00"),
}

func TestApply_Search(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{
			name:   "matches event name",
			search: "gala",
			want:   []string{"Spring Gala"},
		},
		{
			name:   "matches description",
			search: "TOURNAMENT",
			want:   []string{"Chess Blitz"},
		},
		{
			name:   "matches club name",
			search: "student council",
			want:   []string{"Spring Gala", "Open Mic Night"},
		},
		{
			name:   "no matches",
			search: "zzz",
			want:   []string{},
		},
		{
			name:   "whitespace only matches everything",
			search: "   ",
			want:   []string{"Spring Gala", "Chess Blitz", "Robotics Workshop", "Open Mic Night", "Intro to Go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := DefaultState()
			state.Search = tt.search

			got := names(Apply(feed, state))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApply_ClubFilter(t *testing.T) {
	state := DefaultState()
	state.Club = "Student Council"

	got := names(Apply(feed, state))
	want := []string{"Spring Gala", "Open Mic Night"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// The club control is an exact match, not a substring match.
	state.Club = "Student"
	if got := Apply(feed, state); len(got) != 0 {
		t.Errorf("partial club name matched %d events", len(got))
	}
}

func TestApply_SortDate(t *testing.T) {
	got := names(Apply(feed, DefaultState()))
	want := []string{"Spring Gala", "Chess Blitz", "Robotics Workshop", "Open Mic Night", "Intro to Go"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestApply_SortDate_Stable(t *testing.T) {
	// Spring Gala and Chess Blitz share a timestamp; arrival order wins.
	got := names(Apply(feed, DefaultState()))
	if got[0] != "Spring Gala" || got[1] != "Chess Blitz" {
		t.Errorf("equal dates reordered: %v", got[:2])
	}
}

func TestApply_SortDate_Unparseable(t *testing.T) {
	events := []model.Event{
		event("Broken", "", "Chess Club", "not a date"),
		event("Old", "", "Chess Club", "2020-01-01"),
		event("New", "", "Chess Club", "2025-01-01"),
	}

	got := names(Apply(events, DefaultState()))
	want := []string{"New", "Old", "Broken"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestApply_SortName(t *testing.T) {
	state := DefaultState()
	state.Sort = SortName

	got := names(Apply(feed, state))
	want := []string{"Chess Blitz", "Intro to Go", "Open Mic Night", "Robotics Workshop", "Spring Gala"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestApply_SortClub(t *testing.T) {
	state := DefaultState()
	state.Sort = SortClub

	got := Apply(feed, state)
	clubs := make([]string, len(got))
	for i, e := range got {
		clubs[i] = e.Club.Name
	}
	want := []string{"Chess Club", "Computing Society", "Robotics Club", "Student Council", "Student Council"}
	if !reflect.DeepEqual(clubs, want) {
		t.Errorf("got %v, want %v", clubs, want)
	}
	// Within Student Council, arrival order is preserved.
	if got[3].Name != "Spring Gala" || got[4].Name != "Open Mic Night" {
		t.Errorf("same-club events reordered: %v", names(got[3:]))
	}
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	events := []model.Event{
		event("B", "", "c", "2024-01-02"),
		event("A", "", "c", "2024-01-01"),
	}
	state := DefaultState()
	state.Sort = SortName

	Apply(events, state)

	if events[0].Name != "B" {
		t.Error("input slice was reordered")
	}
}

func TestApply_CombinedControls(t *testing.T) {
	state := State{Search: "night", Club: "Student Council", Sort: SortName}

	got := names(Apply(feed, state))
	want := []string{"Open Mic Night"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize(State{Search: "go", Club: "", Sort: "bogus"})
	want := State{Search: "go", Club: AllClubs, Sort: SortDate}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestState_Active(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  bool
	}{
		{"defaults", DefaultState(), false},
		{"search set", State{Search: "x", Club: AllClubs, Sort: SortDate}, true},
		{"club set", State{Club: "Chess Club", Sort: SortDate}, true},
		{"sort changed", State{Club: AllClubs, Sort: SortName}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.Active(); got != tt.want {
				t.Errorf("Active() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestState_Reset(t *testing.T) {
	state := State{Search: "robot", Club: "Chess Club", Sort: SortClub}
	state.Reset()

	if state.Active() {
		t.Errorf("Reset left active controls: %+v", state)
	}
	if !reflect.DeepEqual(Apply(feed, state), Apply(feed, DefaultState())) {
		t.Error("Apply after Reset differs from the default-state result")
	}
}

func TestClubs(t *testing.T) {
	got := Clubs(feed)
	want := []string{"Robotics Club", "Student Council", "Computing Society", "Chess Club"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestClubs_SkipsEmptyNames(t *testing.T) {
	events := []model.Event{
		event("a", "", "", "2024-01-01"),
		event("b", "", "Chess Club", "2024-01-01"),
	}
	got := Clubs(events)
	if !reflect.DeepEqual(got, []string{"Chess Club"}) {
		t.Errorf("got %v", got)
	}
}
