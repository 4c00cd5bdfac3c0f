package dom

import "strings"

// Find returns the first element under root (root included) matching pred,
// in document order, or nil.
func Find(root Node, pred func(*Element) bool) *Element {
	var found *Element
	walk(root, func(e *Element) bool {
		if pred(e) {
			found = e
			return false
		}
		return true
	})
	return found
}

// FindAll returns every element under root (root included) matching pred,
// in document order.
func FindAll(root Node, pred func(*Element) bool) []*Element {
	var out []*Element
	walk(root, func(e *Element) bool {
		if pred(e) {
			out = append(out, e)
		}
		return true
	})
	return out
}

// ByTag matches elements with the given tag.
func ByTag(tag string) func(*Element) bool {
	return func(e *Element) bool { return e.tag == tag }
}

// ByClass matches elements whose class attribute contains class.
func ByClass(class string) func(*Element) bool {
	return func(e *Element) bool {
		v, ok := e.Attr("class")
		if !ok {
			return false
		}
		for _, c := range strings.Fields(v) {
			if c == class {
				return true
			}
		}
		return false
	}
}

// walk visits elements depth-first; visit returns false to stop.
func walk(n Node, visit func(*Element) bool) bool {
	e, ok := n.(*Element)
	if !ok || e == nil {
		return true
	}
	if !visit(e) {
		return false
	}
	for _, c := range e.children {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}
