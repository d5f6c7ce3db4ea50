package reference

// Any is a type-erased Reference. Native views use it for their owner slot,
// since the platform package cannot name the creator type that owns them.
type Any struct {
	kind    Kind
	strong  any
	resolve func() any
}

// Value returns the target, or nil.
func (a Any) Value() any {
	switch a.kind {
	case KindStrong:
		return a.strong
	case KindWeak:
		if a.resolve == nil {
			return nil
		}
		return a.resolve()
	default:
		return nil
	}
}

// Kind reports the ownership direction.
func (a Any) Kind() Kind { return a.kind }

// IsStrong reports whether a owns its target.
func (a Any) IsStrong() bool { return a.kind == KindStrong }

// IsWeak reports whether a observes its target.
func (a Any) IsWeak() bool { return a.kind == KindWeak }

// IsNil reports whether a holds no reference at all.
func (a Any) IsNil() bool { return a.kind == KindNil }

// As resolves a's target as a *T. It returns nil if the target is absent or
// of a different type.
func As[T any](a Any) *T {
	v, _ := a.Value().(*T)
	return v
}
