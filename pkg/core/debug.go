package core

import stderrors "errors"

// DebugMode controls whether placeholder views record the build failure
// that produced them.
var DebugMode = true

// SetDebugMode enables or disables debug mode for the framework.
func SetDebugMode(debug bool) {
	DebugMode = debug
}

var errNoDispatch = stderrors.New("no run loop registered; catch-up pass dropped")
