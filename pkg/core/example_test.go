package core_test

import (
	"fmt"

	"github.com/joshuaharry/featherweight-react/pkg/core"
	"github.com/joshuaharry/featherweight-react/pkg/dom"
)

// This example shows a stateful counter whose button rerenders the tree.
func Example() {
	doc := dom.NewDocument()
	if err := doc.SetBodyHTML(`<div id="app"></div>`); err != nil {
		panic(err)
	}
	root := doc.GetElementByID("app")
	rt := core.NewRuntime()

	counter := func() core.Element {
		count, setCount := core.UseState(0)
		return core.H("button", core.Props{
			"id":      "inc",
			"onclick": func() error { return setCount.Set(count + 1) },
		}, "Clicked ", count, " times")
	}

	if err := rt.Render(counter, root); err != nil {
		panic(err)
	}
	_ = doc.GetElementByID("inc").Click()
	_ = doc.GetElementByID("inc").Click()
	fmt.Println(root.InnerHTML())
	// Output: <button id="inc">Clicked 2 times</button>
}

// This example shows an effect that only runs when its dependency changes.
func ExampleUseEffect() {
	doc := dom.NewDocument()
	root := doc.Body()
	rt := core.NewRuntime()

	var setName core.Setter[string]
	greeter := func() core.Element {
		name, set := core.UseState("world")
		setName = set
		core.UseEffect(func() {
			fmt.Println("greeting", name)
		}, core.Deps(name))
		return core.H("p", nil, "Hello, ", name)
	}

	_ = rt.Render(greeter, root)
	_ = setName.Set("world")
	_ = setName.Set("gopher")
	fmt.Println(root.InnerHTML())
	// Output:
	// greeting world
	// greeting gopher
	// <p>Hello, gopher</p>
}

func ExampleCreateElement() {
	el := core.CreateElement("p", core.Props{"classname": "pink"}, "Hello!")
	n := el.(*core.Node)
	fmt.Println(n.Tag, n.Props["classname"], n.Children)
	// Output: p pink [Hello!]
}
