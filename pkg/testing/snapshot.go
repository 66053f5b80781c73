package testing

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// GoldenDir is the directory golden files are read from, relative to the
// package under test.
const GoldenDir = "testdata/golden"

// Golden returns a goldie instance reading <GoldenDir>/<name>.golden.
// Regenerate files with:
//
//	go test ./... -update
func Golden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir(GoldenDir),
		goldie.WithNameSuffix(".golden"),
	)
}

// MatchesGolden compares the markup inside the mount element, one line per
// top-level node, with the golden file called name.
func (t *Tester) MatchesGolden(tt *testing.T, name string) {
	tt.Helper()
	Golden(tt).Assert(tt, name, []byte(t.Snapshot()))
}

// Snapshot returns the markup inside the mount element with each top-level
// node on its own line.
func (t *Tester) Snapshot() string {
	var sb strings.Builder
	for _, c := range t.Root().Children() {
		sb.WriteString(c.OuterHTML())
		sb.WriteByte('\n')
	}
	return sb.String()
}
