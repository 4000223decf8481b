// Package theme maps semantic color roles onto CSS custom properties with
// static fallback values.
package theme

// Role names a semantic color slot.
type Role string

const (
	Primary     Role = "primary"
	OnPrimary   Role = "on-primary"
	Secondary   Role = "secondary"
	OnSecondary Role = "on-secondary"
	Background  Role = "background"
	Surface     Role = "surface"
	OnSurface   Role = "on-surface"
	Error       Role = "error"
	OnError     Role = "on-error"

	TextPrimaryOnBackground   Role = "text-primary-on-background"
	TextSecondaryOnBackground Role = "text-secondary-on-background"
	TextHintOnBackground      Role = "text-hint-on-background"
	TextDisabledOnBackground  Role = "text-disabled-on-background"
	TextIconOnBackground      Role = "text-icon-on-background"
)

// Theme is an ordered mapping from role name to its default CSS color value.
// It is an explicit configuration object; callers may hold several independent
// themes in one process.
type Theme struct {
	roles  []Role
	values map[Role]string
}

// New creates an empty theme.
func New() *Theme {
	return &Theme{values: make(map[Role]string)}
}

// Baseline returns the default palette.
func Baseline() *Theme {
	t := New()
	t.Set(Primary, "#6200ee")
	t.Set(OnPrimary, "#fff")
	t.Set(Secondary, "#018786")
	t.Set(OnSecondary, "#fff")
	t.Set(Background, "#fff")
	t.Set(Surface, "#fff")
	t.Set(OnSurface, "#000")
	t.Set(Error, "#b00020")
	t.Set(OnError, "#fff")
	t.Set(TextPrimaryOnBackground, "rgba(0, 0, 0, 0.87)")
	t.Set(TextSecondaryOnBackground, "rgba(0, 0, 0, 0.54)")
	t.Set(TextHintOnBackground, "rgba(0, 0, 0, 0.38)")
	t.Set(TextDisabledOnBackground, "rgba(0, 0, 0, 0.38)")
	t.Set(TextIconOnBackground, "rgba(0, 0, 0, 0.38)")
	return t
}

// Set assigns value to role, preserving first-insertion order.
func (t *Theme) Set(role Role, value string) {
	if _, ok := t.values[role]; !ok {
		t.roles = append(t.roles, role)
	}
	t.values[role] = value
}

// Lookup returns the default value for name when it matches a known role.
func (t *Theme) Lookup(name string) (string, bool) {
	v, ok := t.values[Role(name)]
	return v, ok
}

// Roles returns the role names in insertion order.
func (t *Theme) Roles() []Role {
	out := make([]Role, len(t.roles))
	copy(out, t.roles)
	return out
}
