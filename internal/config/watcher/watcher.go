// Package watcher reloads the options file when it changes on disk.
//
// The parent directory is watched with fsnotify so editors that replace the
// file by rename are handled. Bursts of events are debounced into a single
// reload, and the result is delivered on a channel for the host's event
// loop to apply.
package watcher

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/calcsettings/internal/config"
)

// DefaultDebounce is the quiet period before a reload.
const DefaultDebounce = 100 * time.Millisecond

// Reload is the outcome of reloading the options file.
type Reload struct {
	// Path is the absolute path of the options file.
	Path string

	// Options holds the loaded options. When Err is set it still carries
	// every entry that was valid.
	Options config.Options

	// Err is the load error, if any.
	Err error

	// Time is when the reload happened.
	Time time.Time
}

// LoadFunc loads options from path.
type LoadFunc func(path string) (config.Options, error)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before reloading.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithLoader replaces config.Load as the reload function.
func WithLoader(load LoadFunc) Option {
	return func(w *Watcher) {
		if load != nil {
			w.load = load
		}
	}
}

// WithLoadOptions passes options to config.Load on every reload.
func WithLoadOptions(opts ...config.LoadOption) Option {
	return func(w *Watcher) {
		w.load = func(path string) (config.Options, error) {
			return config.Load(path, opts...)
		}
	}
}

// Watcher watches one options file.
type Watcher struct {
	mu sync.Mutex

	path     string
	fsw      *fsnotify.Watcher
	load     LoadFunc
	logger   *slog.Logger
	debounce time.Duration

	reloads chan Reload

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// New starts watching the options file at path. The file need not exist
// yet, but its directory must.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path: abs,
		load: func(p string) (config.Options, error) {
			return config.Load(p)
		},
		logger:   slog.New(slog.DiscardHandler),
		debounce: DefaultDebounce,
		reloads:  make(chan Reload, 1),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	w.fsw = fsw

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Reloads returns the channel of reload results. It is closed by Close.
func (w *Watcher) Reloads() <-chan Reload {
	return w.reloads
}

// Close stops the watcher. It is safe to call Close multiple times.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	close(w.reloads)
	return err
}

func (w *Watcher) processLoop() {
	defer w.wg.Done()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.closeCh:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("options file changed", "path", w.path, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("options watcher error", "path", w.path, "error", err)

		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != filepath.Base(w.path) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}

func (w *Watcher) reload() {
	opts, err := w.load(w.path)
	if err != nil {
		w.logger.Warn("options reload failed", "path", w.path, "error", err)
	} else {
		w.logger.Info("options reloaded", "path", w.path)
	}

	r := Reload{Path: w.path, Options: opts, Err: err, Time: time.Now()}
	select {
	case w.reloads <- r:
	case <-w.closeCh:
	}
}
