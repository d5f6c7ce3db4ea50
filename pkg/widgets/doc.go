// Package widgets provides creators for common native views.
//
// Each constructor returns a typed wrapper around a *core.Creator. Setter
// methods register a single property assignment that runs when the view is
// about to be rendered, and return the wrapper so calls chain:
//
//	title := widgets.Label("Welcome").FontSize(22).Lines(1)
//	submit := widgets.Button("Submit").OnTap(handleSubmit)
//	form := widgets.VStack(title.Creator, submit.Creator).Spacing(8)
//
//	window.SetRoot(form.ReleaseUIView())
//
// Views are created through the platform view registry, so an embedder can
// replace the factory for any view type with its own native implementation.
//
// # Layout
//
// Stack arranges its subviews along one axis on every layout pass, giving
// each visible child an equal share of the space left after spacing. A child
// with an empty frame never appears, so laying out a stack is what makes its
// children appear.
package widgets
