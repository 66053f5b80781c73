package dom

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuaharry/featherweight-react/pkg/errors"
)

func newApp(t *testing.T, markup string) (*Document, *Node) {
	t.Helper()
	doc := NewDocument()
	require.NoError(t, doc.SetBodyHTML(markup))
	app := doc.GetElementByID("app")
	require.NotNil(t, app, "fixture must contain #app")
	return doc, app
}

func TestRemoveChildren(t *testing.T) {
	tests := []struct {
		name   string
		markup string
	}{
		{"empty", `<div id="app"></div>`},
		{"one child", `<div id="app"><p>Hello!</p></div>`},
		{"many children", `<div id="app"><p>Hello!</p><p>This has many children.</p></div>`},
		{"nested children", `<div id="app"><p>This is a child.</p><p>This is another child.</p><div><p>Much recursing.</p><p>Such wow.</p></div></div>`},
		{"text and elements", `<div id="app">loose text<p>x</p>more</div>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, app := newApp(t, tt.markup)
			app.RemoveChildren()
			assert.Empty(t, app.Children())
			assert.Equal(t, `<div id="app"></div>`, doc.Body().InnerHTML())

			app.RemoveChildren()
			assert.Equal(t, `<div id="app"></div>`, doc.Body().InnerHTML())
		})
	}
}

func TestFirstChildNilWhenEmpty(t *testing.T) {
	_, app := newApp(t, `<div id="app"></div>`)
	assert.Nil(t, app.FirstChild(), "FirstChild must be an untyped nil")
}

func TestBuildTree(t *testing.T) {
	doc, app := newApp(t, `<div id="app"></div>`)

	p := doc.CreateElement("p")
	p.SetAttribute("classname", "purple")
	p.SetAttribute("id", "my-par")
	p.SetAttribute("classname", "green")
	p.AppendText("Hello")
	p.AppendText(", world!")
	app.AppendChild(p)

	assert.Equal(t, `<div id="app"><p classname="green" id="my-par">Hello, world!</p></div>`, doc.Body().InnerHTML())
	require.Len(t, p.Children(), 1, "adjacent text should merge")
	assert.Equal(t, "Hello, world!", app.TextContent())
	assert.Same(t, p, doc.GetElementByID("my-par"))
	assert.Same(t, app, p.Parent())

	v, ok := p.Attribute("classname")
	assert.True(t, ok)
	assert.Equal(t, "green", v)
	_, ok = p.Attribute("missing")
	assert.False(t, ok)
}

func TestAppendTextEscapes(t *testing.T) {
	doc, app := newApp(t, `<div id="app"></div>`)
	app.AppendText("<b>&</b>")
	app.AppendText("")
	assert.Equal(t, `<div id="app">&lt;b&gt;&amp;&lt;/b&gt;</div>`, doc.Body().InnerHTML())
}

func TestAppendChildMoves(t *testing.T) {
	doc, app := newApp(t, `<div id="app"><section id="a"></section><section id="b"></section></div>`)
	child := doc.CreateElement("span")
	doc.GetElementByID("a").AppendChild(child)
	doc.GetElementByID("b").AppendChild(child)

	assert.Equal(t, `<section id="a"></section><section id="b"><span></span></section>`, app.InnerHTML())
}

func TestRemovedSubtreeIsForgotten(t *testing.T) {
	doc, app := newApp(t, `<div id="app"></div>`)
	outer := doc.CreateElement("div")
	inner := doc.CreateElement("button")
	inner.SetProperty("onclick", func() {})
	outer.AppendChild(inner)
	app.AppendChild(outer)
	require.Contains(t, doc.nodes, inner.n)

	app.RemoveChild(outer)
	assert.NotContains(t, doc.nodes, outer.n)
	assert.NotContains(t, doc.nodes, inner.n)
	assert.NotNil(t, inner.Property("onclick"), "held references keep their properties")
}

func TestRemoveChildOfOtherParentIsNoop(t *testing.T) {
	doc, app := newApp(t, `<div id="app"><p id="p"></p></div>`)
	stranger := doc.CreateElement("span")
	app.RemoveChild(stranger)
	assert.Len(t, app.Children(), 1)
}

func TestForeignNodePanics(t *testing.T) {
	_, app := newApp(t, `<div id="app"></div>`)
	other := NewDocument().CreateElement("p")
	assert.Panics(t, func() { app.AppendChild(other) })
}

func TestClickBubbles(t *testing.T) {
	doc, _ := newApp(t, `<div id="app"><div id="outer"><button id="btn">Go</button></div></div>`)
	var order []string
	doc.GetElementByID("btn").SetProperty("onclick", func(ev *Event) {
		assert.Equal(t, "click", ev.Type)
		order = append(order, "button")
	})
	doc.GetElementByID("outer").SetProperty("onclick", func() {
		order = append(order, "outer")
	})

	require.NoError(t, doc.GetElementByID("btn").Click())
	assert.Equal(t, []string{"button", "outer"}, order)
}

func TestStopPropagation(t *testing.T) {
	doc, _ := newApp(t, `<div id="app"><div id="outer"><button id="btn">Go</button></div></div>`)
	outerCalled := false
	doc.GetElementByID("btn").SetProperty("onclick", func(ev *Event) { ev.StopPropagation() })
	doc.GetElementByID("outer").SetProperty("onclick", func() { outerCalled = true })

	require.NoError(t, doc.GetElementByID("btn").Click())
	assert.False(t, outerCalled)
}

func TestHandlerErrorsAreJoined(t *testing.T) {
	doc, _ := newApp(t, `<div id="app"><div id="outer"><button id="btn">Go</button></div></div>`)
	errA := stderrors.New("a")
	errB := stderrors.New("b")
	doc.GetElementByID("btn").SetProperty("onclick", func() error { return errA })
	doc.GetElementByID("outer").SetProperty("onclick", func(*Event) error { return errB })

	err := doc.GetElementByID("btn").Click()
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}

func TestHandlerPanicIsReported(t *testing.T) {
	var reported *errors.PanicError
	old := errors.CurrentHandler()
	errors.SetHandler(&captureHandler{onPanic: func(p *errors.PanicError) { reported = p }})
	defer errors.SetHandler(old)

	doc, _ := newApp(t, `<div id="app"><button id="btn">Go</button></div>`)
	doc.GetElementByID("btn").SetProperty("onclick", func() { panic("kaboom") })

	err := doc.GetElementByID("btn").Click()
	var pe *errors.PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "kaboom", pe.Value)
	require.NotNil(t, reported)
	assert.Equal(t, "dom.DispatchEvent", reported.Op)
}

func TestUnsupportedHandler(t *testing.T) {
	doc, _ := newApp(t, `<div id="app"><button id="btn">Go</button></div>`)
	doc.GetElementByID("btn").SetProperty("onclick", "not a function")
	assert.ErrorContains(t, doc.GetElementByID("btn").Click(), "unsupported type string")
}

func TestNoHandler(t *testing.T) {
	doc, _ := newApp(t, `<div id="app"><button id="btn">Go</button></div>`)
	assert.NoError(t, doc.GetElementByID("btn").Click())
}

func TestParseDocument(t *testing.T) {
	doc := NewDocument()
	assert.NotNil(t, doc.Body())
	assert.Contains(t, doc.HTML(), "<body></body>")
	assert.Nil(t, doc.GetElementByID("nope"))
}

type captureHandler struct {
	onPanic func(*errors.PanicError)
}

func (h *captureHandler) HandleError(*errors.RenderError) {}

func (h *captureHandler) HandlePanic(err *errors.PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
