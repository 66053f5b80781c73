package testing

import (
	"strings"
	"testing"
	"time"

	"github.com/joshuaharry/featherweight-react/pkg/core"
)

func counter() core.Element {
	count, setCount := core.UseState(0)
	return core.H("div", nil,
		core.H("p", core.Props{"id": "count"}, count),
		core.H("button", core.Props{
			"id":      "inc",
			"onclick": func() error { return setCount.Set(count + 1) },
		}, "+1"),
	)
}

func TestNewTester_Defaults(t *testing.T) {
	tester := NewTesterWithT(t)

	if tester.Root() == nil || tester.Root().ID() != DefaultRootID {
		t.Fatalf("expected mount element #%s, got %v", DefaultRootID, tester.Root())
	}
	if tester.HTML() != "" {
		t.Errorf("expected empty mount element, got %q", tester.HTML())
	}
	if snap := tester.Hooks(); snap.Active || len(snap.Slots) != 0 {
		t.Errorf("expected idle runtime, got %+v", snap)
	}
}

func TestNewTester_RootID(t *testing.T) {
	tester := NewTesterWithT(t, WithRootID("root"))
	if tester.Root().ID() != "root" {
		t.Errorf("expected #root, got %v", tester.Root())
	}
	if !strings.Contains(tester.Document().HTML(), `<div id="root"></div>`) {
		t.Errorf("document = %s", tester.Document().HTML())
	}
}

func TestMount_ClickAndRerender(t *testing.T) {
	tester := NewTesterWithT(t)
	if err := tester.Mount(counter); err != nil {
		t.Fatal(err)
	}
	for range 3 {
		if err := tester.ClickID("inc"); err != nil {
			t.Fatal(err)
		}
	}
	if got := tester.Find(ByID("count")).Text(); got != "3" {
		t.Errorf("count = %q, want 3", got)
	}

	if err := tester.Rerender(); err != nil {
		t.Fatal(err)
	}
	if got := tester.Find(ByID("count")).Text(); got != "3" {
		t.Errorf("count after rerender = %q, want 3", got)
	}

	// Mounting again starts from fresh hook state.
	if err := tester.Mount(counter); err != nil {
		t.Fatal(err)
	}
	if got := tester.Find(ByID("count")).Text(); got != "0" {
		t.Errorf("count after remount = %q, want 0", got)
	}
}

func TestClick_NoMatch(t *testing.T) {
	tester := NewTesterWithT(t)
	if err := tester.Mount(counter); err != nil {
		t.Fatal(err)
	}
	err := tester.Click(ByText("missing"))
	if err == nil || !strings.Contains(err.Error(), `ByText("missing")`) {
		t.Errorf("expected a no-match error naming the finder, got %v", err)
	}
}

func TestAfter_RunsOnAdvance(t *testing.T) {
	tester := NewTesterWithT(t)
	var set core.Setter[string]
	app := func() core.Element {
		s, setS := core.UseState("waiting")
		set = setS
		return core.Text(s)
	}
	if err := tester.Mount(app); err != nil {
		t.Fatal(err)
	}
	tester.After(500*time.Millisecond, func() error { return set.Set("done") })

	if err := tester.Advance(499 * time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if tester.Text() != "waiting" {
		t.Errorf("timer fired early: %q", tester.Text())
	}
	if err := tester.Advance(time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if tester.Text() != "done" {
		t.Errorf("text = %q, want done", tester.Text())
	}
}

func TestCleanup(t *testing.T) {
	tester := NewTester()
	if err := tester.Mount(counter); err != nil {
		t.Fatal(err)
	}
	tester.Cleanup()
	if tester.HTML() != "" || len(tester.Hooks().Slots) != 0 || tester.Tree() != nil {
		t.Errorf("cleanup left state behind: %q %+v", tester.HTML(), tester.Hooks())
	}
}

func TestRuntimeOptions(t *testing.T) {
	passes := 0
	tester := NewTesterWithT(t, WithRuntimeOptions(core.WithObserver(func(core.HookSnapshot) error {
		passes++
		return nil
	})))
	if err := tester.Mount(counter); err != nil {
		t.Fatal(err)
	}
	if err := tester.ClickID("inc"); err != nil {
		t.Fatal(err)
	}
	if passes != 2 {
		t.Errorf("passes = %d, want 2", passes)
	}
	if tester.Runtime() == nil {
		t.Error("expected a runtime")
	}
}

func TestMatchesGolden(t *testing.T) {
	tester := NewTesterWithT(t)
	if err := tester.Mount(counter); err != nil {
		t.Fatal(err)
	}
	if err := tester.ClickID("inc"); err != nil {
		t.Fatal(err)
	}
	tester.MatchesGolden(t, "counter_clicked")
}

func TestSnapshot_OneLinePerNode(t *testing.T) {
	tester := NewTesterWithT(t)
	app := func() core.Element {
		return core.H("section", nil, core.H("h1", nil, "Title"), core.H("p", nil, "Body"))
	}
	if err := tester.Mount(func() core.Element {
		return core.H("div", nil, app, "tail")
	}); err != nil {
		t.Fatal(err)
	}
	want := "<div><section><h1>Title</h1><p>Body</p></section>tail</div>\n"
	if got := tester.Snapshot(); got != want {
		t.Errorf("snapshot = %q, want %q", got, want)
	}
}
