// Package showcase holds the demo apps served by the featherweight CLI.
package showcase

import (
	"log/slog"
	"slices"
	"time"
)

// Demo represents a showcase demo app.
type Demo struct {
	Name     string
	Title    string
	Subtitle string
	Category string
	// Build returns the tree to mount. It runs outside any render, so it
	// must not call hooks itself.
	Build func(env *Env) any
}

// Category constants for demo organization.
const (
	CategoryHooks  = "hooks"
	CategoryStatic = "static"
)

// Env is what a demo may use from its host.
type Env struct {
	// Logger receives demo output, such as the counter's effect log.
	Logger *slog.Logger
	// After runs fn once d has elapsed. Hosts without timers may run fn
	// on their next idle step instead.
	After func(d time.Duration, fn func() error)
}

func (e *Env) logger() *slog.Logger {
	if e == nil || e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// after schedules fn through the host, or runs it at once when the host
// has no timers.
func (e *Env) after(d time.Duration, fn func() error) error {
	if e == nil || e.After == nil {
		return fn()
	}
	e.After(d, fn)
	return nil
}

// demos is the registry of all showcase demos.
var demos []Demo

// Add new demos here to make them available to the CLI. The registry is
// filled in init because the home demo lists it.
func init() {
	demos = []Demo{
		{"counter", "Counter", "State, a counter and an effect on one of them", CategoryHooks, buildCounter},
		{"names", "Name changers", "Two independent bits of state", CategoryHooks, buildNames},
		{"xor", "Broken Xor Machine", "Delayed updates racing immediate ones", CategoryHooks, buildXor},
		{"about", "About", "A static component tree", CategoryStatic, buildAbout},
		{"home", "Home", "Index of every demo", CategoryStatic, buildHome},
	}
}

// Demos returns every registered demo in registry order.
func Demos() []Demo {
	return slices.Clone(demos)
}

// Lookup returns the demo with the given name.
func Lookup(name string) (Demo, bool) {
	i := slices.IndexFunc(demos, func(d Demo) bool { return d.Name == name })
	if i < 0 {
		return Demo{}, false
	}
	return demos[i], true
}

// Names returns the registered demo names.
func Names() []string {
	names := make([]string, len(demos))
	for i, d := range demos {
		names[i] = d.Name
	}
	return names
}
