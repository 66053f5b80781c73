package showcase

import (
	"strconv"
	"time"

	"github.com/joshuaharry/featherweight-react/pkg/core"
	"github.com/joshuaharry/featherweight-react/pkg/tags"
)

// XorDelay is how long the delayed toggle waits before flipping state A.
const XorDelay = 500 * time.Millisecond

// buildXor keeps two booleans that should always move through the xor
// cycle. "Set State A" flips B and then A at once. "Set State B" flips B
// and flips A only after XorDelay, using the value it saw when clicked, so
// a click on either button during the delay breaks the cycle.
func buildXor(env *Env) any {
	return func() core.Element {
		stateA, setStateA := core.UseState(true)
		stateB, setStateB := core.UseState(false)

		toggleStates := func() error {
			if err := setStateB.Set(!stateB); err != nil {
				return err
			}
			return setStateA.Set(!stateA)
		}
		toggleDelayed := func() error {
			if err := setStateB.Set(!stateB); err != nil {
				return err
			}
			return env.after(XorDelay, func() error {
				return setStateA.Set(!stateA)
			})
		}

		return tags.Div(tags.ID("container"),
			tags.H1(nil, "Broken Xor Machine"),
			tags.Div(tags.ID("side-by-side"),
				tags.Div(nil,
					tags.H2(nil, "State A"),
					tags.Button(core.Props{"id": "set-a", "onclick": toggleStates}, "Set State A"),
					tags.H3(tags.ID("state-a"), strconv.FormatBool(stateA)),
				),
				tags.Div(nil,
					tags.H2(nil, "State B"),
					tags.Button(core.Props{"id": "set-b", "onclick": toggleDelayed}, "Set State B"),
					tags.H3(tags.ID("state-b"), strconv.FormatBool(stateB)),
				),
			),
		)
	}
}
