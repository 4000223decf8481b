package hostaware_test

import (
	"strings"
	"testing"

	css "themec-go/packages/theming/src/css"
)

// normalize runs a stylesheet through the normalizer, failing the test on a
// tokenizer error.
func normalize(t *testing.T, cssText string) string {
	t.Helper()
	result, err := css.NewNormalizer(nil).NormalizeStylesheet(cssText)
	if err != nil {
		t.Fatalf("NormalizeStylesheet(%q) returned error: %v", cssText, err)
	}
	return result
}

// extractCssContent normalizes whitespace so structurally equal stylesheets
// compare equal.
func extractCssContent(cssText string) string {
	cssText = strings.TrimSpace(cssText)
	re := strings.NewReplacer(
		"\n", " ",
		"\t", " ",
		"\r", " ",
	)
	cssText = re.Replace(cssText)
	for strings.Contains(cssText, "  ") {
		cssText = strings.ReplaceAll(cssText, "  ", " ")
	}
	cssText = strings.ReplaceAll(cssText, ": ", ":")
	cssText = strings.ReplaceAll(cssText, " }", "}")
	cssText = strings.ReplaceAll(cssText, "{ ", "{")
	return cssText
}

// equalCss compares two CSS strings after normalization.
func equalCss(actual string, expected string) bool {
	return extractCssContent(actual) == extractCssContent(expected)
}
