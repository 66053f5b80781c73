package showcase

import (
	"github.com/joshuaharry/featherweight-react/pkg/core"
	"github.com/joshuaharry/featherweight-react/pkg/tags"
)

// buildHome lists every other demo, grouped by category.
func buildHome(*Env) any {
	var hookDemos, staticDemos []Demo
	for _, demo := range demos {
		if demo.Name == "home" {
			continue
		}
		switch demo.Category {
		case CategoryHooks:
			hookDemos = append(hookDemos, demo)
		case CategoryStatic:
			staticDemos = append(staticDemos, demo)
		}
	}
	return tags.Div(tags.ID("home"),
		tags.H1(nil, "featherweight"),
		section("Hooks", hookDemos),
		section("Static trees", staticDemos),
	)
}

func section(title string, items []Demo) *core.Node {
	return tags.Section(nil,
		tags.H2(nil, title),
		tags.Ul(nil, tags.Each(items, func(_ int, d Demo) core.Element {
			return tags.Li(tags.ID("demo-"+d.Name), tags.B(nil, d.Title), " ", d.Subtitle)
		})),
	)
}
