package testing

import (
	"io"

	"github.com/go-drift/viewkit/pkg/errors"
)

// CaptureFatal runs fn and returns the invariant violation it raised, or nil
// if it returned normally. Other panics propagate. The global error handler
// is silenced while fn runs.
func CaptureFatal(fn func()) (inv *errors.InvariantError) {
	errors.SetHandler(&errors.LogHandler{Out: io.Discard})
	defer errors.SetHandler(nil)
	defer func() {
		if r := recover(); r != nil {
			var ok bool
			if inv, ok = r.(*errors.InvariantError); !ok {
				panic(r)
			}
		}
	}()
	fn()
	return nil
}
