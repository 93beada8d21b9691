// Package notify delivers option change events to observers.
//
// Delivery is synchronous and in subscription order, so an observer sees
// the display text and value exactly as the controller left them when the
// change was made.
package notify

import (
	"sort"
	"sync"
)

// ChangeType represents the kind of change.
type ChangeType int

const (
	// ChangeSet indicates an option was set.
	ChangeSet ChangeType = iota

	// ChangeConflict indicates an option was reset because another option
	// overrode it (a bound cleared by the opposite bound).
	ChangeConflict

	// ChangeReload indicates the whole option set was replaced.
	ChangeReload
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeSet:
		return "set"
	case ChangeConflict:
		return "conflict"
	case ChangeReload:
		return "reload"
	default:
		return "unknown"
	}
}

// Change sources.
const (
	SourceUser     = "user"
	SourceConflict = "conflict"
	SourceDialog   = "dialog"
	SourceFile     = "file"
	SourceRestore  = "restore"
)

// Change represents a change event.
type Change struct {
	// Path is the dot-separated option path, or a derived path such as
	// "display" or "value". Empty for reload events.
	Path string

	// Type is the type of change.
	Type ChangeType

	// OldValue is the previous value (may be nil).
	OldValue any

	// NewValue is the new value (may be nil).
	NewValue any

	// Source identifies where the change came from.
	Source string
}

// Observer is called when a change occurs.
type Observer func(change Change)

// Subscription represents an active observer subscription.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

type entry struct {
	id       uint64
	path     string // empty for global observers
	observer Observer
}

// Notifier manages change subscriptions.
type Notifier struct {
	mu      sync.RWMutex
	entries map[uint64]entry
	nextID  uint64
}

// New creates a new Notifier.
func New() *Notifier {
	return &Notifier{entries: make(map[uint64]entry)}
}

// Subscribe registers an observer for all changes.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	return n.add("", observer)
}

// SubscribePath registers an observer for changes to a path.
// The observer is called for exact matches and for changes below it, so
// subscribing to "bounds" receives "bounds.min". Reload events reach every
// observer.
func (n *Notifier) SubscribePath(path string, observer Observer) *Subscription {
	return n.add(path, observer)
}

func (n *Notifier) add(path string, observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.entries[id] = entry{id: id, path: path, observer: observer}

	return &Subscription{id: id, notifier: n}
}

// Notify sends a change to all matching observers.
func (n *Notifier) Notify(change Change) {
	n.mu.RLock()
	matched := make([]entry, 0, len(n.entries))
	for _, e := range n.entries {
		if e.path == "" || change.Path == "" || e.path == change.Path || isParentPath(e.path, change.Path) {
			matched = append(matched, e)
		}
	}
	n.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].id < matched[j].id })

	// Call observers outside the lock
	for _, e := range matched {
		e.observer(change)
	}
}

// NotifySet is a convenience method for set changes.
func (n *Notifier) NotifySet(path string, oldValue, newValue any, source string) {
	n.Notify(Change{
		Path:     path,
		Type:     ChangeSet,
		OldValue: oldValue,
		NewValue: newValue,
		Source:   source,
	})
}

// NotifyConflict reports that path was reset to newValue.
func (n *Notifier) NotifyConflict(path string, oldValue, newValue any) {
	n.Notify(Change{
		Path:     path,
		Type:     ChangeConflict,
		OldValue: oldValue,
		NewValue: newValue,
		Source:   SourceConflict,
	})
}

// NotifyReload is a convenience method for reload events.
func (n *Notifier) NotifyReload(source string) {
	n.Notify(Change{
		Type:   ChangeReload,
		Source: source,
	})
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.entries, id)
}

// isParentPath checks if parent is a parent path of child.
// e.g., "bounds" is parent of "bounds.min".
func isParentPath(parent, child string) bool {
	return len(child) > len(parent) && child[:len(parent)] == parent && child[len(parent)] == '.'
}

// Batch collects changes and delivers them together on Commit.
type Batch struct {
	notifier *Notifier
	changes  []Change
	mu       sync.Mutex
}

// NewBatch creates a new batch for collecting changes.
func (n *Notifier) NewBatch() *Batch {
	return &Batch{notifier: n}
}

// Add adds a change to the batch.
func (b *Batch) Add(change Change) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.changes = append(b.changes, change)
}

// Set adds a set change to the batch.
func (b *Batch) Set(path string, oldValue, newValue any, source string) {
	b.Add(Change{
		Path:     path,
		Type:     ChangeSet,
		OldValue: oldValue,
		NewValue: newValue,
		Source:   source,
	})
}

// Commit sends all batched changes to observers.
func (b *Batch) Commit() {
	b.mu.Lock()
	changes := b.changes
	b.changes = nil
	b.mu.Unlock()

	for _, change := range changes {
		b.notifier.Notify(change)
	}
}
