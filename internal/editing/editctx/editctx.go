// Package editctx supplies editing parameters to widget operations.
//
// Operations like scrolling take a Count that may be given exactly or may
// defer to the surrounding edit context (for example, a count prefix typed
// before a command). The Context interface decouples the widget from
// whatever layer tracks those pending parameters.
package editctx

// Count is a request quantity, either exact or resolved by the context.
type Count struct {
	exact int
	isSet bool
}

// Contextual returns a count that defers to the context for its value.
func Contextual() Count {
	return Count{}
}

// Exact returns a count with a fixed value.
func Exact(n int) Count {
	if n < 0 {
		n = 0
	}
	return Count{exact: n, isSet: true}
}

// Context resolves deferred parameters for an operation.
type Context interface {
	// ResolveCount returns the effective value of a count. Contextual
	// counts resolve to the context's pending count, defaulting to 1.
	ResolveCount(c Count) int
}

// Simple is a Context carrying an optional pending count.
// The zero value resolves contextual counts to 1.
type Simple struct {
	// Count is the pending count, if any.
	Count *int
}

// ResolveCount implements Context.
func (s Simple) ResolveCount(c Count) int {
	if c.isSet {
		return c.exact
	}
	if s.Count != nil && *s.Count >= 0 {
		return *s.Count
	}
	return 1
}
