package testing

import (
	"fmt"

	"github.com/go-drift/viewkit/pkg/core"
	"github.com/go-drift/viewkit/pkg/platform"
)

// Finder locates views in the window hierarchy.
type Finder interface {
	// Evaluate returns the matching views under root, depth first.
	Evaluate(root *platform.View) []*platform.View
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult holds the views matched by a finder.
type FinderResult struct {
	views  []*platform.View
	finder Finder
}

// Exists reports whether anything matched.
func (r FinderResult) Exists() bool { return len(r.views) > 0 }

// Count returns the number of matches.
func (r FinderResult) Count() int { return len(r.views) }

// First returns the first match, or nil.
func (r FinderResult) First() *platform.View {
	if len(r.views) == 0 {
		return nil
	}
	return r.views[0]
}

// Views returns every match.
func (r FinderResult) Views() []*platform.View { return r.views }

func (r FinderResult) String() string {
	return fmt.Sprintf("%s: %d match(es)", r.finder.Description(), len(r.views))
}

// Find evaluates finder against the window's hierarchy.
func (t *Tester) Find(finder Finder) FinderResult {
	return FinderResult{views: finder.Evaluate(t.window.Content()), finder: finder}
}

type predicateFinder struct {
	desc  string
	match func(*platform.View) bool
}

func (f predicateFinder) Description() string { return f.desc }

func (f predicateFinder) Evaluate(root *platform.View) []*platform.View {
	var out []*platform.View
	var walk func(*platform.View)
	walk = func(v *platform.View) {
		if f.match(v) {
			out = append(out, v)
		}
		for _, sub := range v.Subviews() {
			walk(sub)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// ByName matches views whose creator has the given name.
func ByName(name string) Finder {
	return predicateFinder{
		desc: fmt.Sprintf("ByName(%q)", name),
		match: func(v *platform.View) bool {
			c := core.CreatorOf(v)
			return c != nil && c.Name() == name
		},
	}
}

// ByViewType matches views of the given type.
func ByViewType(viewType string) Finder {
	return predicateFinder{
		desc:  fmt.Sprintf("ByViewType(%q)", viewType),
		match: func(v *platform.View) bool { return v.ViewType() == viewType },
	}
}

// ByProp matches views whose property key equals value.
func ByProp(key string, value any) Finder {
	return predicateFinder{
		desc: fmt.Sprintf("ByProp(%q, %v)", key, value),
		match: func(v *platform.View) bool {
			got, ok := v.Get(key)
			return ok && got == value
		},
	}
}
