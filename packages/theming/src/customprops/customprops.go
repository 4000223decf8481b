package customprops

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Prop describes a CSS custom property together with a static fallback value.
// Name is stored without the leading "--" prefix.
type Prop struct {
	Name        string
	Fallback    string
	Annotations []string
}

// New creates a custom property descriptor. Annotations are GSS annotation
// names ("alternate", "noflip") emitted as comments before the declaration.
func New(name string, fallback string, annotations ...string) Prop {
	return Prop{
		Name:        name,
		Fallback:    fallback,
		Annotations: annotations,
	}
}

// VarName returns the variable name as it appears in CSS, e.g. "--theme-primary".
func (p Prop) VarName() string {
	if strings.HasPrefix(p.Name, "--") {
		return p.Name
	}
	return "--" + p.Name
}

// Var returns the var() expression for this property, including the fallback
// when one is set.
func (p Prop) Var() string {
	if p.Fallback == "" {
		return fmt.Sprintf("var(%s)", p.VarName())
	}
	return fmt.Sprintf("var(%s, %s)", p.VarName(), p.Fallback)
}

// Emitter writes custom-property declarations and collects the root-level
// variable definitions they imply. Definitions are recorded once per variable
// name, in first-use order.
type Emitter struct {
	log     *zap.Logger
	defined map[string]struct{}
	defs    []Prop
}

// NewEmitter creates an emitter. A nil logger is replaced with a no-op one.
func NewEmitter(log *zap.Logger) *Emitter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Emitter{
		log:     log.Named("customprops"),
		defined: make(map[string]struct{}),
	}
}

// Declaration writes "property: var(--name, fallback);" to w, preceded by any
// GSS annotation comments, and records the variable for the root block.
func (e *Emitter) Declaration(w io.Writer, property string, p Prop, important bool) error {
	for _, ann := range p.Annotations {
		if _, err := fmt.Fprintf(w, "/* @%s */\n", ann); err != nil {
			return fmt.Errorf("writing annotation: %w", err)
		}
	}
	bang := ""
	if important {
		bang = " !important"
	}
	if _, err := fmt.Fprintf(w, "%s: %s%s;\n", property, p.Var(), bang); err != nil {
		return fmt.Errorf("writing declaration: %w", err)
	}
	e.Record(p)
	return nil
}

// Record registers a variable for the root block without emitting a
// declaration. Duplicate names are ignored.
func (e *Emitter) Record(p Prop) {
	name := p.VarName()
	if _, ok := e.defined[name]; ok {
		return
	}
	e.defined[name] = struct{}{}
	e.defs = append(e.defs, p)
	e.log.Debug("Recorded custom property", zap.String("name", name), zap.String("fallback", p.Fallback))
}

// Definitions returns the recorded variables in first-use order.
func (e *Emitter) Definitions() []Prop {
	out := make([]Prop, len(e.defs))
	copy(out, e.defs)
	return out
}

// WriteRoot writes a ":root" block defining every recorded variable with its
// fallback as the initial value. Nothing is written when no variable was used.
func (e *Emitter) WriteRoot(w io.Writer) error {
	if len(e.defs) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, ":root {"); err != nil {
		return fmt.Errorf("writing root block: %w", err)
	}
	for _, p := range e.defs {
		if _, err := fmt.Fprintf(w, "  %s: %s;\n", p.VarName(), p.Fallback); err != nil {
			return fmt.Errorf("writing root block: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return fmt.Errorf("writing root block: %w", err)
	}
	return nil
}
