package dnd

import (
	"fmt"
	"slices"

	"github.com/phanxgames/dnd/internal/util"
	"go.uber.org/multierr"
)

// Handle identifies a registered listener. The zero Handle is never issued.
type Handle uint64

// Listener receives an emitted value. A returned error (or a panic) is
// captured and reported without stopping the other listeners.
type Listener[E any] func(E) error

type listenerEntry[E any] struct {
	id    Handle
	fn    Listener[E]
	once  bool
	fired bool
}

// Bus is a synchronous, single-threaded publish/subscribe primitive keyed by
// K. Listeners for a key run in registration order over a snapshot taken when
// Emit starts, so listeners added or removed during a pass do not change it.
type Bus[K comparable, E any] struct {
	listeners map[K][]*listenerEntry[E]
	keys      map[Handle]K
	nextID    Handle
	report    func(*ListenerError)
	destroyed bool
}

// NewBus creates an empty bus. report, when non-nil, receives each listener
// failure once, after the emission pass that produced it completes.
func NewBus[K comparable, E any](report func(*ListenerError)) *Bus[K, E] {
	return &Bus[K, E]{
		listeners: make(map[K][]*listenerEntry[E]),
		keys:      make(map[Handle]K),
		report:    report,
	}
}

// On registers fn for key and returns its handle. Returns 0 after Destroy or
// for a nil fn.
func (b *Bus[K, E]) On(key K, fn Listener[E]) Handle {
	return b.add(key, fn, false)
}

// Once registers fn for key; it is removed before its first invocation, so it
// runs at most once even if it fails.
func (b *Bus[K, E]) Once(key K, fn Listener[E]) Handle {
	return b.add(key, fn, true)
}

func (b *Bus[K, E]) add(key K, fn Listener[E], once bool) Handle {
	if b.destroyed || fn == nil {
		return 0
	}
	b.nextID++
	id := b.nextID
	b.listeners[key] = append(b.listeners[key], &listenerEntry[E]{id: id, fn: fn, once: once})
	b.keys[id] = key
	return id
}

// Off removes the listener registered under h. Reports whether it was found.
func (b *Bus[K, E]) Off(h Handle) bool {
	key, ok := b.keys[h]
	if !ok {
		return false
	}
	delete(b.keys, h)
	list := b.listeners[key]
	if i := slices.IndexFunc(list, func(e *listenerEntry[E]) bool { return e.id == h }); i >= 0 {
		list = slices.Delete(list, i, i+1)
	}
	if len(list) == 0 {
		delete(b.listeners, key)
	} else {
		b.listeners[key] = list
	}
	return true
}

// Len returns the number of listeners registered for key.
func (b *Bus[K, E]) Len(key K) int {
	return len(b.listeners[key])
}

// Emit invokes the listeners registered for key with e. Failures are reported
// and returned combined; they never interrupt the pass.
func (b *Bus[K, E]) Emit(key K, e E) error {
	list := b.listeners[key]
	if len(list) == 0 {
		return nil
	}
	snapshot := slices.Clone(list)

	var failures []*ListenerError
	for _, entry := range snapshot {
		if entry.once {
			if entry.fired {
				continue
			}
			entry.fired = true
			b.Off(entry.id)
		}
		if lerr := invokeListener(entry, e); lerr != nil {
			lerr.Event = fmt.Sprint(key)
			failures = append(failures, lerr)
		}
	}

	var errs error
	for _, f := range failures {
		if b.report != nil {
			b.report(f)
		}
		errs = multierr.Append(errs, f)
	}
	return errs
}

func invokeListener[E any](entry *listenerEntry[E], e E) (lerr *ListenerError) {
	defer func() {
		if r := recover(); r != nil {
			lerr = &ListenerError{
				Handle:    entry.id,
				Err:       fmt.Errorf("%w: %v (%s)", ErrListenerPanic, r, util.TypeName(r)),
				Recovered: r,
			}
		}
	}()
	if err := entry.fn(e); err != nil {
		return &ListenerError{Handle: entry.id, Err: err}
	}
	return nil
}

// Destroy drops every listener. Subsequent registrations are ignored.
// Calling Destroy more than once is a no-op.
func (b *Bus[K, E]) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	clear(b.listeners)
	clear(b.keys)
}
