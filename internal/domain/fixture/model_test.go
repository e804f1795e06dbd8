package fixture

import "testing"

func gw(id int64) *int64 { return &id }

func TestFixtureIsLive(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		started  bool
		finished bool
		want     bool
	}{
		{name: "not started", started: false, finished: false, want: false},
		{name: "in progress", started: true, finished: false, want: true},
		{name: "finished", started: true, finished: true, want: false},
		{name: "finished flag without start", started: false, finished: true, want: false},
	}
	for _, tc := range cases {
		got := Fixture{Started: tc.started, Finished: tc.finished}.IsLive()
		if got != tc.want {
			t.Fatalf("%s: IsLive()=%v want=%v", tc.name, got, tc.want)
		}
	}
}

func TestAnyLive(t *testing.T) {
	t.Parallel()

	if AnyLive(nil) {
		t.Fatalf("empty fixture set must not be live")
	}
	items := []Fixture{
		{ID: 1, Started: true, Finished: true},
		{ID: 2, Started: false},
	}
	if AnyLive(items) {
		t.Fatalf("expected no live fixture")
	}
	items = append(items, Fixture{ID: 3, Started: true})
	if !AnyLive(items) {
		t.Fatalf("expected live fixture")
	}
}

func TestFilterByGameweek(t *testing.T) {
	t.Parallel()

	items := []Fixture{
		{ID: 1, GameweekID: gw(5)},
		{ID: 2, GameweekID: gw(6)},
		{ID: 3},
		{ID: 4, GameweekID: gw(5)},
	}
	got := FilterByGameweek(items, 5)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 4 {
		t.Fatalf("unexpected filtered fixtures: %+v", got)
	}
}
