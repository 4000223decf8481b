// Package css normalizes invalid compound :host pseudo-class selectors, as
// produced by shadow-DOM style encapsulation, into valid CSS.
package css

import "strings"

const hostToken = ":host"

// SelectorList is an ordered, comma-separated group of selectors sharing one
// declaration block.
type SelectorList []string

// ParseSelectorList splits a selector-list string on top-level commas,
// trimming surrounding whitespace from each selector. Commas inside
// parentheses or attribute brackets do not split.
func ParseSelectorList(text string) SelectorList {
	parens := 0
	brackets := 0
	prev := 0
	var result SelectorList

	flush := func(part string) {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			parens++
		case ')':
			parens--
		case '[':
			brackets++
		case ']':
			brackets--
		case ',':
			if parens == 0 && brackets == 0 {
				flush(text[prev:i])
				prev = i + 1
			}
		}
	}
	flush(text[prev:])
	return result
}

// String joins the list back into CSS selector-list syntax.
func (l SelectorList) String() string {
	return strings.Join(l, ", ")
}

// hostSelector is the parsed form of a selector's first compound token when
// that token begins with ":host". The token is parsed once; NeedsFix and
// FixHostSelector are lookups over this structure.
type hostSelector struct {
	arg      string // argument inside :host(...), empty when absent
	trailing string // simple selectors following :host or the closing paren
	rest     string // combinator-joined remainder, never touched
}

// splitFirstCompound splits a selector chain into its first compound token
// and the combinator-joined remainder. Combinators (space, >, +, ~ but not
// ~=) only count at zero parenthesis and bracket depth.
func splitFirstCompound(selector string) (first, rest string) {
	parens := 0
	brackets := 0
	for i := 0; i < len(selector); i++ {
		switch c := selector[i]; c {
		case '(':
			parens++
		case ')':
			parens--
		case '[':
			brackets++
		case ']':
			brackets--
		case ' ', '>', '+', '~':
			if parens == 0 && brackets == 0 {
				if c == '~' && i+1 < len(selector) && selector[i+1] == '=' {
					continue
				}
				return selector[:i], selector[i:]
			}
		}
	}
	return selector, ""
}

// parseHost parses selector as a :host-led compound chain. ok is false when
// the first compound token does not begin with ":host".
func parseHost(selector string) (hostSelector, bool) {
	first, rest := splitFirstCompound(selector)
	if !strings.HasPrefix(first, hostToken) {
		return hostSelector{}, false
	}
	h := hostSelector{rest: rest}
	if strings.HasPrefix(first, hostToken+"(") {
		// The rightmost ) bounds the argument. Nested groups before it are
		// kept inside the argument; this is not a balanced-paren parser.
		if end := strings.LastIndexByte(first, ')'); end > len(hostToken) {
			h.arg = first[len(hostToken)+1 : end]
			h.trailing = first[end+1:]
			return h, true
		}
	}
	// Bare :host, or an argument group that never closes; everything after
	// the token is trailing content. Unbalanced input gets a best-effort fix.
	h.trailing = first[len(hostToken):]
	return h, true
}

func (h hostSelector) needsFix() bool {
	return h.trailing != ""
}

// fixed merges the trailing simple selectors into the :host() argument and
// reattaches the untouched combinator remainder.
func (h hostSelector) fixed() string {
	return hostToken + "(" + h.arg + h.trailing + ")" + h.rest
}

// NeedsFix reports whether selector is a :host-led compound chain with
// trailing simple selectors outside the :host() argument. Plain ":host",
// ":host(...)" with nothing trailing, and combinator-joined chains like
// ":host button" never qualify.
func NeedsFix(selector string) bool {
	h, ok := parseHost(selector)
	return ok && h.needsFix()
}

// FixHostSelector rewrites a qualifying selector so all trailing simple
// selectors sit inside the :host() argument, e.g. ":host([outlined]):hover"
// becomes ":host([outlined]:hover)". Selectors that need no fix are returned
// unchanged; the operation is idempotent.
func FixHostSelector(selector string) string {
	h, ok := parseHost(selector)
	if !ok || !h.needsFix() {
		return selector
	}
	return h.fixed()
}

// HostAware concatenates the given selector lists into one list, fixing every
// selector that qualifies and passing the rest through unchanged. The result
// is the new enclosing context for the callers' rules: it replaces the
// original scope rather than nesting inside it.
func HostAware(lists ...SelectorList) SelectorList {
	var out SelectorList
	for _, list := range lists {
		for _, selector := range list {
			out = append(out, FixHostSelector(selector))
		}
	}
	return out
}
