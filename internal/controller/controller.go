// Package controller binds the option surface to the numeric-entry dialog.
//
// A Controller owns the raw options, the bounds and format policies derived
// from them, and the last value accepted from the dialog. It is driven by a
// single event loop: option edits, open requests and dialog results arrive
// as method calls, and nothing here blocks or locks.
//
// Dialog sessions are identified by a Tag. Only one session is active at a
// time; results carrying any other tag are ignored.
package controller

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/dshills/calcsettings/internal/bounds"
	"github.com/dshills/calcsettings/internal/config"
	"github.com/dshills/calcsettings/internal/config/notify"
	"github.com/dshills/calcsettings/internal/config/registry"
	"github.com/dshills/calcsettings/internal/dialog"
	"github.com/dshills/calcsettings/internal/format"
	"github.com/dshills/calcsettings/internal/numeric"
)

// Derived paths notified alongside option paths.
const (
	PathDisplay = "display"
	PathValue   = "value"
)

// Tag identifies one dialog presentation.
type Tag string

// NewTag returns a random session tag.
func NewTag() Tag {
	return Tag(uuid.NewString())
}

// Presenter shows the dialog. It returns immediately; the result arrives
// later through OnValueEntered or OnDialogDismissed with the same tag.
type Presenter interface {
	Present(settings *dialog.Settings, tag Tag)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(settings *dialog.Settings, tag Tag)

// Present calls f.
func (f PresenterFunc) Present(settings *dialog.Settings, tag Tag) {
	f(settings, tag)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithNotifier sets the notifier that receives option, display and value
// changes.
func WithNotifier(n *notify.Notifier) Option {
	return func(c *Controller) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithDefaults replaces the registry defaults as the initial options.
func WithDefaults(o config.Options) Option {
	return func(c *Controller) {
		c.options = o
	}
}

// WithTagSource replaces NewTag as the session tag generator.
func WithTagSource(next func() Tag) Option {
	return func(c *Controller) {
		if next != nil {
			c.nextTag = next
		}
	}
}

// Controller is the settings state for one host view.
type Controller struct {
	presenter Presenter
	logger    *slog.Logger
	notifier  *notify.Notifier
	nextTag   func() Tag

	options config.Options
	bounds  bounds.Policy
	format  format.Policy

	value   *numeric.Value
	tag     Tag
	display string
}

// New creates a controller with no value and the default options.
func New(presenter Presenter, opts ...Option) *Controller {
	c := &Controller{
		presenter: presenter,
		logger:    slog.New(slog.DiscardHandler),
		notifier:  notify.New(),
		nextTag:   NewTag,
		options:   config.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.bounds = c.options.BoundsPolicy()
	c.reflectConflict()
	c.format = c.options.FormatPolicy()
	c.display = c.format.Format(c.value)
	return c
}

// OnOptionChanged stores a raw option value and re-derives the policy the
// option belongs to. Unparseable text is accepted and treated as unset;
// errors are returned only for unknown paths, wrong raw types and invalid
// selector entries, and leave the state unchanged.
func (c *Controller) OnOptionChanged(path string, raw any) error {
	old := c.options.Get(path)
	if err := c.options.Set(path, raw); err != nil {
		c.logger.Debug("option rejected", "path", path, "error", err)
		return err
	}
	c.notifier.NotifySet(path, old, c.options.Get(path), notify.SourceUser)

	switch registry.SectionOf(path) {
	case registry.SectionBounds:
		switch path {
		case registry.BoundsMin, registry.BoundsMinEnabled:
			c.bounds = c.bounds.SetMin(c.options.Min.Text, c.options.Min.Enabled)
		default:
			c.bounds = c.bounds.SetMax(c.options.Max.Text, c.options.Max.Enabled)
		}
		c.reflectConflict()
	case registry.SectionFormat:
		c.format = c.options.FormatPolicy()
	}

	c.render(notify.SourceUser)
	return nil
}

// ApplyOptions replaces every option at once, as after reloading the
// options file. Both policies are derived from scratch. Observers receive
// the changed paths, then a reload event once the new state is in place.
func (c *Controller) ApplyOptions(o config.Options) {
	changed := config.Diff(c.options, o)
	prev := c.options
	c.options = o

	batch := c.notifier.NewBatch()
	for _, path := range changed {
		batch.Set(path, prev.Get(path), o.Get(path), notify.SourceFile)
	}
	batch.Commit()

	c.bounds = o.BoundsPolicy()
	c.reflectConflict()
	c.format = o.FormatPolicy()
	c.render(notify.SourceFile)
	c.notifier.NotifyReload(notify.SourceFile)
}

// OnOpenRequested presents the dialog with the current settings. It does
// nothing and returns false while a session is active or after Detach.
func (c *Controller) OnOpenRequested() bool {
	if c.tag != "" {
		c.logger.Debug("open ignored, dialog already active", "tag", string(c.tag))
		return false
	}
	if c.presenter == nil {
		c.logger.Debug("open ignored, controller detached")
		return false
	}

	c.tag = c.nextTag()
	settings := c.Settings()
	c.logger.Debug("presenting dialog", "tag", string(c.tag))
	c.presenter.Present(settings, c.tag)
	return true
}

// OnValueEntered accepts the dialog's result. A nil value clears the stored
// value. Results whose tag is not the active session's are ignored and
// reported as false.
func (c *Controller) OnValueEntered(tag Tag, v *numeric.Value) bool {
	if !c.endSession(tag) {
		return false
	}

	old := c.value
	c.value = copyValue(v)
	c.notifier.NotifySet(PathValue, valueText(old), valueText(c.value), notify.SourceDialog)
	c.render(notify.SourceDialog)
	return true
}

// OnDialogDismissed ends the session without changing the value.
func (c *Controller) OnDialogDismissed(tag Tag) bool {
	return c.endSession(tag)
}

func (c *Controller) endSession(tag Tag) bool {
	if tag == "" || tag != c.tag {
		c.logger.Debug("stale dialog result ignored", "tag", string(tag), "active", string(c.tag))
		return false
	}
	c.tag = ""
	return true
}

// Detach releases the presenter when the host view is destroyed. Results
// from the session that was active are ignored from now on.
func (c *Controller) Detach() {
	c.tag = ""
	c.presenter = nil
}

// Settings assembles the dialog settings from the current state.
func (c *Controller) Settings() *dialog.Settings {
	return dialog.Build(c.value, c.bounds, c.format, c.options.Behavior, c.options.Layout)
}

// Value returns a copy of the stored value, or nil.
func (c *Controller) Value() *numeric.Value {
	return copyValue(c.value)
}

// Display returns the stored value rendered with the format policy.
func (c *Controller) Display() string {
	return c.display
}

// Options returns a copy of the raw options.
func (c *Controller) Options() config.Options {
	return c.options
}

// Bounds returns the derived bounds.
func (c *Controller) Bounds() bounds.Policy {
	return c.bounds
}

// Format returns the derived format policy.
func (c *Controller) Format() format.Policy {
	return c.format
}

// ActiveTag returns the tag of the active session, or "".
func (c *Controller) ActiveTag() Tag {
	return c.tag
}

// Notifier returns the notifier used for change events.
func (c *Controller) Notifier() *notify.Notifier {
	return c.notifier
}

// reflectConflict writes a bound cleared by the opposite bound back into
// the options as a disabled checkbox.
func (c *Controller) reflectConflict() {
	var path string
	switch c.bounds.Cleared() {
	case bounds.SideMin:
		c.options.Min.Enabled = false
		path = registry.BoundsMinEnabled
	case bounds.SideMax:
		c.options.Max.Enabled = false
		path = registry.BoundsMaxEnabled
	default:
		return
	}
	c.logger.Warn("bound disabled by conflicting bound",
		"cleared", c.bounds.Cleared().String(),
		"min", c.options.Min.Text,
		"max", c.options.Max.Text)
	c.notifier.NotifyConflict(path, true, false)
}

func (c *Controller) render(source string) {
	display := c.format.Format(c.value)
	if display == c.display {
		return
	}
	old := c.display
	c.display = display
	c.notifier.NotifySet(PathDisplay, old, display, source)
}

func copyValue(v *numeric.Value) *numeric.Value {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}

func valueText(v *numeric.Value) any {
	if v == nil {
		return nil
	}
	return v.String()
}
