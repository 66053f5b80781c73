// Package core provides the element model, the hook store and the render
// pipeline.
//
// Authoring code builds an immutable tree of [Element] values, usually with
// [CreateElement] or [H]. [Render] paints the tree onto a [surface.Node],
// invoking component functions as it goes. Components keep state between
// renders with hooks:
//
//	func Counter(any) core.Element {
//	    count, setCount := core.UseState(0)
//	    core.UseEffect(func() {
//	        log.Printf("count is %d", count)
//	    }, core.Deps(count))
//	    return core.H("button", core.Props{
//	        "onclick": func() error { return setCount.Set(count + 1) },
//	    }, count)
//	}
//
//	err := core.Render(core.Component(Counter), root)
//
// # Render passes
//
// Every top-level render clears the target and rebuilds it from scratch;
// there is no diffing. Calling a [Setter] stores the new value and runs a
// whole render of the tree it belongs to again before returning.
//
// # Hook order
//
// Hook state lives in an ordered list of slots owned by a [Runtime], matched
// to hook calls by position. Components must call the same hooks in the same
// order on every render; hooks must not be called conditionally or in loops
// of varying length.
//
// # Errors
//
// Render returns *errors.RenderError values whose Kind tells usage errors,
// malformed trees and component failures apart. Whatever happens, the
// runtime is idle again when Render returns.
package core
