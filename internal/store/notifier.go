package store

import "sync"

type Op string

const (
	OpCreate  Op = "create"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
	OpReplace Op = "replace"
)

// Event describes a completed mutation on a table. ID is zero for
// whole-table operations (replace).
type Event struct {
	Table string
	Op    Op
	ID    uint64
}

// Notifier is the explicit "data changed" channel between the store and its
// consumers: callbacks registered per table run after every successful
// mutation, on the mutating goroutine. Mutations and a fresh query are still
// the only way to observe new data; the event carries no row payload.
type Notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]func(Event)
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[string]map[int]func(Event))}
}

// Subscribe registers fn for mutations on table and returns an unsubscribe
// function. Unsubscribing twice is harmless.
func (n *Notifier) Subscribe(table string, fn func(Event)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs[table] == nil {
		n.subs[table] = make(map[int]func(Event))
	}
	id := n.nextID
	n.nextID++
	n.subs[table][id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs[table], id)
	}
}

// Publish invokes the table's callbacks. Callbacks run outside the lock so a
// subscriber may re-query the store (or unsubscribe) without deadlocking.
func (n *Notifier) Publish(e Event) {
	n.mu.Lock()
	fns := make([]func(Event), 0, len(n.subs[e.Table]))
	for _, fn := range n.subs[e.Table] {
		fns = append(fns, fn)
	}
	n.mu.Unlock()
	for _, fn := range fns {
		fn(e)
	}
}
