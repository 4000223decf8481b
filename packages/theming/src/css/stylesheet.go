package css

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	cssparse "github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Normalizer rewrites rule preludes of whole stylesheets through the
// host-aware fix-up. Declarations and at-rule preludes pass through verbatim.
type Normalizer struct {
	log *zap.Logger
}

// NewNormalizer creates a stylesheet normalizer. A nil logger is replaced
// with a no-op one.
func NewNormalizer(log *zap.Logger) *Normalizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Normalizer{log: log.Named("host-aware")}
}

// NormalizeStylesheet tokenizes cssText and rewrites every qualifying
// selector list in rule preludes, leaving all other text untouched.
func (n *Normalizer) NormalizeStylesheet(cssText string) (string, error) {
	lexer := cssparse.NewLexer(parse.NewInputString(cssText))

	var out bytes.Buffer
	var prelude bytes.Buffer

	flush := func() {
		prelude.WriteTo(&out)
		prelude.Reset()
	}

	for {
		tt, data := lexer.Next()
		switch tt {
		case cssparse.ErrorToken:
			if err := lexer.Err(); err != nil && err != io.EOF {
				return "", fmt.Errorf("tokenizing stylesheet: %w", err)
			}
			flush()
			return out.String(), nil
		case cssparse.LeftBraceToken:
			out.WriteString(n.normalizePrelude(prelude.String()))
			prelude.Reset()
			out.Write(data)
		case cssparse.RightBraceToken, cssparse.SemicolonToken:
			flush()
			out.Write(data)
		default:
			prelude.Write(data)
		}
	}
}

// normalizePrelude rewrites a rule prelude, preserving its surrounding
// whitespace. At-rule preludes and empty runs are returned as-is.
func (n *Normalizer) normalizePrelude(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, "@") {
		return raw
	}
	list := ParseSelectorList(trimmed)
	fixed := HostAware(list)
	changed := false
	for i := range list {
		if fixed[i] != list[i] {
			changed = true
			break
		}
	}
	if !changed {
		// Keep the author's formatting when no selector needed fixing.
		return raw
	}

	leading := raw[:len(raw)-len(strings.TrimLeft(raw, " \t\r\n"))]
	trailing := raw[len(strings.TrimRight(raw, " \t\r\n")):]
	normalized := fixed.String()
	n.log.Debug("Rewrote selector list", zap.String("from", trimmed), zap.String("to", normalized))
	return leading + normalized + trailing
}
