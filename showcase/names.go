package showcase

import (
	"github.com/joshuaharry/featherweight-react/pkg/core"
	"github.com/joshuaharry/featherweight-react/pkg/tags"
)

type nameChangerProps struct {
	ID      string
	Name    string
	OnClick func() error
}

var nameChanger = core.Typed(func(p nameChangerProps) core.Element {
	return tags.Div(nil,
		tags.H1(tags.ID(p.ID), p.Name),
		tags.Button(core.Props{"onclick": p.OnClick, "id": "change-" + p.ID, "type": "button"},
			"Change the name!"),
	)
})

// swap returns b when v is a and a otherwise.
func swap(v, a, b string) string {
	if v == a {
		return b
	}
	return a
}

func buildNames(*Env) any {
	return func() core.Element {
		first, setFirst := core.UseState("Bob")
		second, setSecond := core.UseState("the Builder")
		return tags.Div(nil,
			core.Lazy(nameChanger, nameChangerProps{
				ID:   "first-name",
				Name: first,
				OnClick: func() error {
					return setFirst.Set(swap(first, "Bob", "Dora"))
				},
			}),
			core.Lazy(nameChanger, nameChangerProps{
				ID:   "second-name",
				Name: second,
				OnClick: func() error {
					return setSecond.Set(swap(second, "the Builder", "the Explorer"))
				},
			}),
		)
	}
}
