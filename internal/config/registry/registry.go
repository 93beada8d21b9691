package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dshills/calcsettings/internal/dialog"
	"github.com/dshills/calcsettings/internal/format"
	"github.com/dshills/calcsettings/internal/numeric"
)

// Registry maintains all known option definitions.
type Registry struct {
	mu       sync.RWMutex
	settings map[string]*Setting
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		settings: make(map[string]*Setting),
	}
}

// NewWithDefaults creates a registry with the built-in options.
func NewWithDefaults() *Registry {
	r := New()
	r.RegisterDefaults()
	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the shared registry of built-in options.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewWithDefaults()
	})
	return defaultRegistry
}

// Register adds a setting definition to the registry.
// Returns an error if a setting with the same path already exists.
func (r *Registry) Register(setting Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.settings[setting.Path]; exists {
		return fmt.Errorf("%w: %s", ErrSettingAlreadyRegistered, setting.Path)
	}

	r.settings[setting.Path] = &setting
	return nil
}

// MustRegister registers a setting and panics on error.
// Used for the built-in options.
func (r *Registry) MustRegister(setting Setting) {
	if err := r.Register(setting); err != nil {
		panic(err)
	}
}

// Get returns the setting definition for the given path, or nil.
func (r *Registry) Get(path string) *Setting {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings[path]
}

// Has checks if a setting is registered.
func (r *Registry) Has(path string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.settings[path]
	return exists
}

// All returns all registered settings sorted by path.
func (r *Registry) All() []*Setting {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Setting, 0, len(r.settings))
	for _, s := range r.settings {
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Path < result[j].Path
	})

	return result
}

// Defaults returns a map of all default values keyed by path.
func (r *Registry) Defaults() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]any, len(r.settings))
	for path, s := range r.settings {
		result[path] = s.Default
	}
	return result
}

// Validate checks if a raw value is valid for the option at path.
func (r *Registry) Validate(path string, value any) error {
	s := r.Get(path)
	if s == nil {
		return fmt.Errorf("%w: %s", ErrUnknownSetting, path)
	}
	return s.Validate(value)
}

// SectionOf returns the top-level section of a path.
func SectionOf(path string) string {
	section, _, _ := strings.Cut(path, ".")
	return section
}

// RegisterDefaults registers the built-in options.
func (r *Registry) RegisterDefaults() {
	// Bounds
	r.MustRegister(Setting{
		Path:        BoundsMin,
		Type:        TypeString,
		Default:     "-10000000000",
		Description: "Minimum value accepted by the dialog",
	})
	r.MustRegister(Setting{
		Path:        BoundsMinEnabled,
		Type:        TypeBool,
		Default:     true,
		Description: "Apply the minimum value",
	})
	r.MustRegister(Setting{
		Path:        BoundsMax,
		Type:        TypeString,
		Default:     "10000000000",
		Description: "Maximum value accepted by the dialog",
	})
	r.MustRegister(Setting{
		Path:        BoundsMaxEnabled,
		Type:        TypeBool,
		Default:     true,
		Description: "Apply the maximum value",
	})

	// Format
	r.MustRegister(Setting{
		Path:        FormatStyle,
		Type:        TypeEnum,
		Default:     format.StyleStandard.String(),
		Description: "Number format style",
		Enum:        format.Styles(),
	})
	r.MustRegister(Setting{
		Path:        FormatMaxIntegerDigits,
		Type:        TypeString,
		Default:     "10",
		Description: "Maximum number of integer digits displayed",
	})
	r.MustRegister(Setting{
		Path:        FormatMaxIntegerDigitsEnabled,
		Type:        TypeBool,
		Default:     true,
		Description: "Apply the maximum integer digits",
	})
	r.MustRegister(Setting{
		Path:        FormatMaxFractionDigits,
		Type:        TypeString,
		Default:     "8",
		Description: "Maximum number of fraction digits displayed",
	})
	r.MustRegister(Setting{
		Path:        FormatMaxFractionDigitsEnabled,
		Type:        TypeBool,
		Default:     true,
		Description: "Apply the maximum fraction digits",
	})
	r.MustRegister(Setting{
		Path:        FormatRounding,
		Type:        TypeEnum,
		Default:     numeric.RoundHalfEven.String(),
		Description: "Rounding applied when the fraction digits are capped",
		Enum:        numeric.RoundingModes(),
	})
	r.MustRegister(Setting{
		Path:        FormatLocale,
		Type:        TypeString,
		Default:     "",
		Description: "BCP 47 locale for separators and currency (empty for en-US)",
	})
	r.MustRegister(Setting{
		Path:        FormatCurrency,
		Type:        TypeString,
		Default:     "",
		Description: "ISO 4217 currency code (empty for the locale's currency)",
	})
	r.MustRegister(Setting{
		Path:        FormatDecimalSeparator,
		Type:        TypeString,
		Default:     "",
		Description: "Decimal separator (empty for the locale's)",
	})
	r.MustRegister(Setting{
		Path:        FormatGroupSeparator,
		Type:        TypeString,
		Default:     "",
		Description: "Grouping separator (empty for the locale's)",
	})
	r.MustRegister(Setting{
		Path:        FormatGroupSize,
		Type:        TypeInt,
		Default:     -1,
		Description: "Digits per group, 0 to disable grouping, -1 for the locale's",
		Minimum:     MinValue(-1),
	})
	r.MustRegister(Setting{
		Path:        FormatPlaceholder,
		Type:        TypeString,
		Default:     format.DefaultPlaceholder,
		Description: "Text displayed when no value is selected",
	})

	// Dialog
	behavior := dialog.DefaultBehavior()
	r.MustRegister(Setting{
		Path:        DialogExpressionShown,
		Type:        TypeBool,
		Default:     behavior.ExpressionShown,
		Description: "Show the expression above the value",
	})
	r.MustRegister(Setting{
		Path:        DialogExpressionEditable,
		Type:        TypeBool,
		Default:     behavior.ExpressionEditable,
		Description: "Allow editing the expression",
	})
	r.MustRegister(Setting{
		Path:        DialogAnswerButtonShown,
		Type:        TypeBool,
		Default:     behavior.AnswerButtonShown,
		Description: "Show the answer button",
	})
	r.MustRegister(Setting{
		Path:        DialogSignButtonShown,
		Type:        TypeBool,
		Default:     behavior.SignButtonShown,
		Description: "Show the sign button",
	})
	r.MustRegister(Setting{
		Path:        DialogOrderOfOperationsApplied,
		Type:        TypeBool,
		Default:     behavior.OrderOfOperationsApplied,
		Description: "Apply operator precedence",
	})
	r.MustRegister(Setting{
		Path:        DialogEvaluateOnOperation,
		Type:        TypeBool,
		Default:     behavior.EvaluateOnOperation,
		Description: "Evaluate the expression whenever an operator is pressed",
	})
	r.MustRegister(Setting{
		Path:        DialogZeroShownWhenNoValue,
		Type:        TypeBool,
		Default:     behavior.ZeroShownWhenNoValue,
		Description: "Display 0 instead of an empty value",
	})
	r.MustRegister(Setting{
		Path:        DialogNumpadLayout,
		Type:        TypeEnum,
		Default:     dialog.LayoutCalculator.String(),
		Description: "Arrangement of the digit buttons",
		Enum:        dialog.Layouts(),
	})
}
