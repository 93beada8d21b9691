package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/calcsettings/internal/config/notify"
	"github.com/dshills/calcsettings/internal/numeric"
	"github.com/dshills/calcsettings/internal/store"
)

// ErrCorruptSnapshot is returned by Restore for snapshots that are not a
// JSON object with an optional decimal string under "value".
var ErrCorruptSnapshot = errors.New("corrupt controller snapshot")

// snapshotKey holds the stored value. Its absence means no value.
const snapshotKey = "value"

// Snapshot is the persisted controller state: {"value":"42.5"}, or {}
// when no value is stored. Options are not part of it.
type Snapshot []byte

// Persist returns the state to keep across host view teardown. Only the
// stored value is kept; the value text preserves its scale exactly.
func (c *Controller) Persist() Snapshot {
	if c.value == nil {
		return Snapshot("{}")
	}
	// The key is a constant plain path, so SetBytes cannot fail.
	data, _ := sjson.SetBytes([]byte("{}"), snapshotKey, c.value.String())
	return Snapshot(data)
}

// Restore recreates a controller from a snapshot. Options start from the
// defaults (or WithDefaults), not from the snapshot. An empty snapshot
// means nothing was persisted. A restored value is published on the
// notifier (see WithNotifier) with notify.SourceRestore.
func Restore(snap Snapshot, presenter Presenter, opts ...Option) (*Controller, error) {
	v, err := decodeSnapshot(snap)
	if err != nil {
		return nil, err
	}

	c := New(presenter, opts...)
	c.logger.Info("controller restored", "value", valueText(v))
	if v == nil {
		return c, nil
	}
	c.value = v
	c.notifier.NotifySet(PathValue, nil, valueText(v), notify.SourceRestore)
	c.render(notify.SourceRestore)
	return c, nil
}

func decodeSnapshot(snap Snapshot) (*numeric.Value, error) {
	if len(bytes.TrimSpace(snap)) == 0 {
		return nil, nil
	}
	if !gjson.ValidBytes(snap) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrCorruptSnapshot)
	}
	root := gjson.ParseBytes(snap)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: not an object", ErrCorruptSnapshot)
	}

	field := root.Get(snapshotKey)
	if !field.Exists() {
		return nil, nil
	}
	if field.Type != gjson.String {
		return nil, fmt.Errorf("%w: %s is %s, want string", ErrCorruptSnapshot, snapshotKey, field.Type)
	}
	v, err := numeric.Parse(field.Str)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	return &v, nil
}

// SaveTo persists the snapshot in st under key.
func (c *Controller) SaveTo(ctx context.Context, st store.Store, key string) error {
	if err := st.Save(ctx, key, c.Persist()); err != nil {
		return fmt.Errorf("saving controller %q: %w", key, err)
	}
	return nil
}

// RestoreFrom recreates a controller from the snapshot stored under key.
// A missing key yields a fresh controller.
func RestoreFrom(ctx context.Context, st store.Store, key string, presenter Presenter, opts ...Option) (*Controller, error) {
	data, err := st.Load(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return New(presenter, opts...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading controller %q: %w", key, err)
	}
	return Restore(Snapshot(data), presenter, opts...)
}
