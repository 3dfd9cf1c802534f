package ast

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(e *Element) error

// Walk performs a pre-order traversal of elements and their children.
// If walkFunc returns a non-nil error, the walk stops immediately and
// returns that error.
func Walk(elements []*Element, walkFunc WalkFunc) error {
	for _, e := range elements {
		if e == nil {
			continue
		}
		if err := walkFunc(e); err != nil {
			return err
		}
		if err := Walk(e.Children, walkFunc); err != nil {
			return err
		}
	}
	return nil
}

// WalkWithContext performs a traversal with enter and leave callbacks.
// Enter is called before visiting children, leave is called after.
// Either callback may be nil.
func WalkWithContext(elements []*Element, enter, leave WalkFunc) error {
	for _, e := range elements {
		if e == nil {
			continue
		}

		if enter != nil {
			if err := enter(e); err != nil {
				return err
			}
		}

		if err := WalkWithContext(e.Children, enter, leave); err != nil {
			return err
		}

		if leave != nil {
			if err := leave(e); err != nil {
				return err
			}
		}
	}
	return nil
}

// FindAll returns all elements matching the predicate, in document order.
func FindAll(elements []*Element, predicate func(e *Element) bool) []*Element {
	var result []*Element

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(elements, func(e *Element) error {
		if predicate(e) {
			result = append(result, e)
		}
		return nil
	})

	return result
}

// FindFirst returns the first element matching the predicate, or nil.
func FindFirst(elements []*Element, predicate func(e *Element) bool) *Element {
	var found *Element

	//nolint:errcheck,revive // errStopWalk is expected and intentionally ignored
	Walk(elements, func(e *Element) error {
		if predicate(e) {
			found = e
			return errStopWalk
		}
		return nil
	})

	return found
}

// FindByKind returns all elements of the specified kind.
func FindByKind(elements []*Element, kind Kind) []*Element {
	return FindAll(elements, func(e *Element) bool {
		return e.Kind == kind
	})
}

// Depth returns the deepest nesting level in elements. A flat list has
// depth 1, an empty list depth 0.
func Depth(elements []*Element) int {
	depth, maxDepth := 0, 0

	//nolint:errcheck,revive // callbacks never fail
	WalkWithContext(elements,
		func(*Element) error {
			depth++
			maxDepth = max(maxDepth, depth)
			return nil
		},
		func(*Element) error {
			depth--
			return nil
		},
	)

	return maxDepth
}

// errStopWalk is a sentinel error used to stop walking early.
var errStopWalk = &stopWalkError{}

type stopWalkError struct{}

func (e *stopWalkError) Error() string {
	return "stop walk"
}
