package theme

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"themec-go/packages/theming/src/customprops"
	"themec-go/packages/theming/src/featuretargeting"
)

// Resolver emits theme-aware property declarations. A value that names a role
// of the configured theme is rewritten to a custom property "--theme-<role>"
// with the role's default as fallback.
type Resolver struct {
	theme   *Theme
	emitter *customprops.Emitter
	query   featuretargeting.Query
	log     *zap.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLogger sets the logger used by the resolver and its emitter.
func WithLogger(log *zap.Logger) ResolverOption {
	return func(r *Resolver) { r.log = log }
}

// WithQuery sets the feature-targeting query gating emission.
func WithQuery(q featuretargeting.Query) ResolverOption {
	return func(r *Resolver) { r.query = q }
}

// WithEmitter sets the custom-property emitter, letting several resolvers
// share one set of root definitions.
func WithEmitter(e *customprops.Emitter) ResolverOption {
	return func(r *Resolver) { r.emitter = e }
}

// NewResolver creates a resolver over the given theme. A nil theme uses the
// baseline palette.
func NewResolver(t *Theme, opts ...ResolverOption) *Resolver {
	if t == nil {
		t = Baseline()
	}
	r := &Resolver{
		theme: t,
		query: featuretargeting.All(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}
	r.log = r.log.Named("theme")
	if r.emitter == nil {
		r.emitter = customprops.NewEmitter(r.log)
	}
	return r
}

// Emitter returns the custom-property emitter accumulating root definitions.
func (r *Resolver) Emitter() *customprops.Emitter { return r.emitter }

type applyOptions struct {
	annotations []string
	important   bool
}

// ApplyOption modifies a single Apply call.
type ApplyOption func(*applyOptions)

// Important marks the emitted declaration "!important".
func Important() ApplyOption {
	return func(o *applyOptions) { o.important = true }
}

// Annotate attaches GSS annotation names emitted as comments before the
// declaration.
func Annotate(names ...string) ApplyOption {
	return func(o *applyOptions) { o.annotations = append(o.annotations, names...) }
}

// Apply emits a declaration for property. The value is one of:
//
//   - customprops.Prop: delegated to the custom-property emitter as-is;
//   - string naming a theme role: rewritten to a "--theme-<role>" custom
//     property with the role's default value as fallback;
//   - any other string: emitted as a literal CSS value.
//
// Emission is gated by the feature-targeting query; a gated-out call writes
// nothing and returns nil.
func (r *Resolver) Apply(w io.Writer, property string, value any, opts ...ApplyOption) error {
	var o applyOptions
	for _, opt := range opts {
		opt(&o)
	}
	if !r.query.Emits(featuretargeting.ColorStyles) {
		r.log.Debug("Skipping gated declaration", zap.String("property", property))
		return nil
	}

	switch v := value.(type) {
	case customprops.Prop:
		v.Annotations = append(v.Annotations, o.annotations...)
		return r.emitter.Declaration(w, property, v, o.important)
	case string:
		if fallback, ok := r.theme.Lookup(v); ok {
			prop := customprops.New("theme-"+v, fallback, o.annotations...)
			return r.emitter.Declaration(w, property, prop, o.important)
		}
		return writeLiteral(w, property, v, o)
	default:
		return fmt.Errorf("unsupported value type %T for property %q", value, property)
	}
}

// Prop is the legacy declaration path: style must be either a known role or a
// recognized literal CSS color value. Anything else is an error whose message
// enumerates the valid role keys.
func (r *Resolver) Prop(w io.Writer, property string, style string, opts ...ApplyOption) error {
	if _, ok := r.theme.Lookup(style); ok {
		return r.Apply(w, property, style, opts...)
	}
	if !isValidLiteral(style) {
		roles := r.theme.Roles()
		keys := make([]string, len(roles))
		for i, role := range roles {
			keys[i] = string(role)
		}
		return fmt.Errorf("invalid theme style %q for property %q: expected a CSS color value or one of: %s",
			style, property, strings.Join(keys, ", "))
	}
	return r.Apply(w, property, style, opts...)
}

func writeLiteral(w io.Writer, property string, value string, o applyOptions) error {
	for _, ann := range o.annotations {
		if _, err := fmt.Fprintf(w, "/* @%s */\n", ann); err != nil {
			return fmt.Errorf("writing annotation: %w", err)
		}
	}
	bang := ""
	if o.important {
		bang = " !important"
	}
	if _, err := fmt.Fprintf(w, "%s: %s%s;\n", property, value, bang); err != nil {
		return fmt.Errorf("writing declaration: %w", err)
	}
	return nil
}

// CSS-wide keywords and color keywords the legacy path accepts verbatim.
var literalKeywords = map[string]bool{
	"currentColor": true,
	"transparent":  true,
	"inherit":      true,
	"initial":      true,
	"revert":       true,
	"unset":        true,
}

func isValidLiteral(value string) bool {
	if literalKeywords[value] {
		return true
	}
	for _, prefix := range []string{"#", "rgb(", "rgba(", "hsl(", "hsla(", "var("} {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}
