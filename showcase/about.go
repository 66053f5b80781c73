package showcase

import (
	"github.com/joshuaharry/featherweight-react/pkg/core"
	"github.com/joshuaharry/featherweight-react/pkg/tags"
)

type aboutProps struct {
	FirstColor  string
	SecondColor string
}

var about = core.Typed(func(p aboutProps) core.Element {
	return tags.Div(core.Props{"classname": p.FirstColor},
		tags.P(nil, "This system is designed to help us get started understanding the semantics of renders."),
		tags.P(core.Props{"classname": p.SecondColor}, "Let's get to it!"),
	)
})

func buildAbout(*Env) any {
	return tags.Div(nil,
		tags.P(core.Props{"classname": "blue"}, "Hello, world!"),
		tags.P(core.Props{"classname": "purple"}, "Welcome to a very simple React clone."),
		core.Lazy(about, aboutProps{FirstColor: "green", SecondColor: "yellow"}),
	)
}
