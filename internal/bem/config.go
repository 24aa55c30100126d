package bem

// Config holds the naming settings read by every composer.
// Values are read at composition time, so changes made between two calls
// are visible to the second call.
type Config struct {
	SelectorPrefix    string // "ui-"
	ElementSeparator  string // "__"
	ModifierSeparator string // "--"
	StatePrefix       string // "is"
	QualifyState      bool   // true: &.is-open, false: &--is-open
}

// Default configuration values
const (
	DefaultSelectorPrefix    = ""
	DefaultElementSeparator  = "__"
	DefaultModifierSeparator = "--"
	DefaultStatePrefix       = "is"
	DefaultQualifyState      = true
)

// DefaultConfig returns a Config populated with the default separators.
func DefaultConfig() *Config {
	return &Config{
		SelectorPrefix:    DefaultSelectorPrefix,
		ElementSeparator:  DefaultElementSeparator,
		ModifierSeparator: DefaultModifierSeparator,
		StatePrefix:       DefaultStatePrefix,
		QualifyState:      DefaultQualifyState,
	}
}
