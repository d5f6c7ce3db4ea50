package widgets_test

import (
	"fmt"

	"github.com/go-drift/viewkit/pkg/platform"
	"github.com/go-drift/viewkit/pkg/widgets"
)

// This example shows how to create a button with a tap handler.
func ExampleButton() {
	loop := platform.NewLoop()
	defer loop.Install()()

	button := widgets.Button("Click Me").OnTap(func() {
		fmt.Println("Button tapped!")
	})

	window := platform.NewWindow(platform.RectOf(320, 480))
	view := button.ReleaseUIView()
	window.SetRoot(view)
	widgets.Tap(view)

	// Output:
	// Button tapped!
}

// This example shows a vertical stack laying out its children.
func ExampleVStack() {
	loop := platform.NewLoop()
	defer loop.Install()()

	title := widgets.Label("Title")
	body := widgets.Label("Body")
	stack := widgets.VStack(title.Creator, body.Creator).Spacing(20)

	window := platform.NewWindow(platform.RectOf(320, 480))
	view := stack.ReleaseUIView()
	window.SetRoot(view)
	view.SetFrame(platform.RectOf(100, 220))

	for _, sub := range view.Subviews() {
		fmt.Println(sub.Frame())
	}

	// Output:
	// (0,0 100x100)
	// (0,120 100x100)
}
