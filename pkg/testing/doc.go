// Package testing provides a harness for exercising creators against an
// in-process view hierarchy.
//
// # Quick Start
//
// Create a tester, mount a creator, and make assertions:
//
//	func TestGreeting(t *testing.T) {
//	    tester := vktest.NewTesterWithT(t)
//	    label := widgets.Label("Hello").Named("greeting")
//	    tester.Mount(label.Creator)
//	    tester.SetFrame(label.Creator, platform.RectOf(200, 40))
//
//	    if !tester.Find(vktest.ByName("greeting")).Exists() {
//	        t.Error("expected greeting")
//	    }
//	    if !tester.Saw("greeting appear") {
//	        t.Errorf("events: %v", tester.Events())
//	    }
//	}
//
// The tester installs its own run loop as the global dispatcher and records
// every lifecycle event. Deferred catch-up passes only run when Pump or
// PumpAndSettle is called.
//
// # Interaction and Snapshots
//
// Tap, Hide, Resize and SetAppearance drive the first view a finder matches.
// CaptureSnapshot serializes the window's hierarchy, including each view's
// creator and phase, and MatchesFile compares it against a golden JSON file.
// Set VIEWKIT_UPDATE_SNAPSHOTS=1 to rewrite golden files.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import vktest "github.com/go-drift/viewkit/pkg/testing"
package testing
