// Package config holds the raw option state behind the numeric-entry
// dialog settings.
//
// Options are what the user sees in the settings screen: text fields for
// bounds and digit caps, checkboxes that enable them, selectors for style,
// rounding and numpad layout, and the dialog behavior flags. Text is kept
// verbatim; it is only interpreted when a policy is derived, so a field
// that does not parse never produces an error.
//
// # Layers
//
// Load builds Options from lowest to highest priority:
//
//	┌─────────────────────────────┐
//	│  4. Environment (CALC_*)    │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. .env file               │
//	├─────────────────────────────┤
//	│  2. Options file            │  ← options.toml / options.yaml
//	├─────────────────────────────┤
//	│  1. Registry defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - registry: option definitions with types, defaults and selector entries
//   - loader: TOML, YAML, environment and .env decoding into raw maps
//   - notify: change observers for the controller
//   - watcher: live reload of the options file
//
// # Paths
//
// Options are addressed by section and name:
//
//	bounds.min              = "-10000000000"
//	bounds.minEnabled       = true
//	format.style            = "currency"
//	format.maxFractionDigits = "2"
//	dialog.numpadLayout     = "phone"
package config
