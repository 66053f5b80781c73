// Package testing provides a harness for driving element trees headlessly.
//
// # Quick Start
//
// Create a tester, mount a tree, and make assertions:
//
//	func TestCounter(t *testing.T) {
//	    tester := fwtest.NewTesterWithT(t)
//	    if err := tester.Mount(Counter); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    if err := tester.Click(fwtest.ByText("+1")); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    if got := tester.Find(fwtest.ByID("count")).Text(); got != "1" {
//	        t.Errorf("count = %q", got)
//	    }
//	}
//
// # Golden Files
//
// Compare the rendered markup with testdata/golden/<name>.golden:
//
//	tester.MatchesGolden(t, "counter_initial")
//
// Update golden files with:
//
//	go test ./... -update
//
// # Delayed Work
//
// Work a real app would run after a timeout is scheduled on a fake clock
// and fires when the test advances it:
//
//	tester.After(500*time.Millisecond, func() error { return setB.Set(true) })
//	tester.Advance(500 * time.Millisecond)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import fwtest "github.com/joshuaharry/featherweight-react/pkg/testing"
package testing
