package platform

import "sync"

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// RegisterDispatch sets the dispatch function used to schedule callbacks on the
// next turn of the UI run loop. Pass nil to unregister. It returns the
// previously registered function so tests can restore it.
func RegisterDispatch(fn func(callback func())) func(callback func()) {
	dispatchMu.Lock()
	prev := dispatchFunc
	dispatchFunc = fn
	dispatchMu.Unlock()
	return prev
}

// Dispatch schedules a callback to run on the next UI run loop turn.
// Returns true if the callback was successfully scheduled, false if no dispatch function
// is registered or the callback is nil.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}
