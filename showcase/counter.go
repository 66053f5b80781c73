package showcase

import (
	"github.com/joshuaharry/featherweight-react/pkg/core"
	"github.com/joshuaharry/featherweight-react/pkg/tags"
)

// buildCounter is a greeting that toggles, a counter, and an effect that
// only runs when the greeting changes.
func buildCounter(env *Env) any {
	log := env.logger()
	return func() core.Element {
		state, setState := core.UseState("Hello!")
		counter, setCounter := core.UseState(1)
		core.UseEffect(func() {
			log.Info("The effect ran!", "state", state)
		}, core.Deps(state))

		changeState := func() error {
			if state == "Hello!" {
				return setState.Set("Goodbye!")
			}
			return setState.Set("Hello!")
		}
		updateCounter := func() error {
			return setCounter.Set(counter + 1)
		}

		return tags.Div(nil,
			tags.H1(tags.ID("state"), state),
			tags.H2(tags.ID("counter"), counter),
			tags.Button(core.Props{"id": "effect-button", "onclick": changeState, "type": "button"},
				"Trigger the effect!"),
			tags.Button(core.Props{"id": "counter-button", "onclick": updateCounter, "type": "button"},
				"Update the counter!"),
		)
	}
}
