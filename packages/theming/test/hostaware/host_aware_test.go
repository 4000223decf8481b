package hostaware_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	css "themec-go/packages/theming/src/css"
)

func TestNeedsFix(t *testing.T) {
	testCases := []struct {
		selector string
		expected bool
	}{
		{":host", false},
		{":host([outlined])", false},
		{":host(:hover)", false},
		{":host:hover", true},
		{":host.open", true},
		{":host([outlined]):hover", true},
		{":host([outlined]).open", true},
		{":host(:not(.a)):hover", true},
		{":host button", false},
		{":host > button", false},
		{":host([outlined]) button", false},
		{"button:hover", false},
		{".host:hover", false},
		{":host(", true}, // unbalanced input still gets a best-effort fix
	}

	for _, tc := range testCases {
		if got := css.NeedsFix(tc.selector); got != tc.expected {
			t.Errorf("NeedsFix(%q) = %v, expected %v", tc.selector, got, tc.expected)
		}
	}
}

func TestFixHostSelector(t *testing.T) {
	t.Run("should merge trailing content into the argument", func(t *testing.T) {
		testCases := []struct {
			selector string
			expected string
		}{
			{":host:hover", ":host(:hover)"},
			{":host.open", ":host(.open)"},
			{":host([outlined]):hover", ":host([outlined]:hover)"},
			{":host([outlined]).open", ":host([outlined].open)"},
			{":host(:not(.a)):hover", ":host(:not(.a):hover)"},
			{":host([dir=rtl]):focus", ":host([dir=rtl]:focus)"},
		}

		for _, tc := range testCases {
			if got := css.FixHostSelector(tc.selector); got != tc.expected {
				t.Errorf("FixHostSelector(%q) = %q, expected %q", tc.selector, got, tc.expected)
			}
		}
	})

	t.Run("should leave valid selectors unchanged", func(t *testing.T) {
		testCases := []string{
			":host",
			":host([outlined])",
			":host(:hover)",
			":host button",
			":host button:hover",
			":host([outlined]) > .inner",
			".foo:hover",
		}

		for _, selector := range testCases {
			if got := css.FixHostSelector(selector); got != selector {
				t.Errorf("FixHostSelector(%q) = %q, expected it unchanged", selector, got)
			}
		}
	})

	t.Run("should only touch the first compound of a chain", func(t *testing.T) {
		testCases := []struct {
			selector string
			expected string
		}{
			{":host:hover button", ":host(:hover) button"},
			{":host([a]):focus > .inner", ":host([a]:focus) > .inner"},
		}

		for _, tc := range testCases {
			if got := css.FixHostSelector(tc.selector); got != tc.expected {
				t.Errorf("FixHostSelector(%q) = %q, expected %q", tc.selector, got, tc.expected)
			}
		}
	})

	t.Run("should be idempotent", func(t *testing.T) {
		selectors := []string{":host:hover", ":host([outlined]):hover", ":host.open"}
		for _, selector := range selectors {
			once := css.FixHostSelector(selector)
			twice := css.FixHostSelector(once)
			if once != twice {
				t.Errorf("FixHostSelector not idempotent for %q: %q then %q", selector, once, twice)
			}
		}
	})
}

func TestHostAware(t *testing.T) {
	t.Run("should combine lists and fix qualifying selectors", func(t *testing.T) {
		base := css.SelectorList{":host([outlined])", ":host", ":host button"}
		hover := make(css.SelectorList, len(base))
		for i, selector := range base {
			hover[i] = selector + ":hover"
		}

		got := css.HostAware(base, hover)
		expected := css.SelectorList{
			":host([outlined])",
			":host",
			":host button",
			":host([outlined]:hover)",
			":host(:hover)",
			":host button:hover",
		}
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("HostAware mismatch (-expected +got):\n%s", diff)
		}
	})

	t.Run("should pass through an already-fixed list unchanged", func(t *testing.T) {
		list := css.SelectorList{":host(:hover)", ":host([outlined]:focus)"}
		got := css.HostAware(list)
		if diff := cmp.Diff(list, got); diff != "" {
			t.Errorf("HostAware mismatch (-expected +got):\n%s", diff)
		}
	})
}

func TestParseSelectorList(t *testing.T) {
	testCases := []struct {
		text     string
		expected css.SelectorList
	}{
		{":host, :host:hover", css.SelectorList{":host", ":host:hover"}},
		{":host(:not(.a, .b)), .c", css.SelectorList{":host(:not(.a, .b))", ".c"}},
		{"[title=\"a,b\"], .c", css.SelectorList{"[title=\"a,b\"]", ".c"}},
		{"  .a ,\n .b  ", css.SelectorList{".a", ".b"}},
	}

	for _, tc := range testCases {
		got := css.ParseSelectorList(tc.text)
		if diff := cmp.Diff(tc.expected, got); diff != "" {
			t.Errorf("ParseSelectorList(%q) mismatch (-expected +got):\n%s", tc.text, diff)
		}
	}
}
