package applier

import "sync"

// Observer receives a batch of content-change events produced by one
// ApplyEdits call. Observers may read the buffer from within the
// callback but must not mutate it.
type Observer func(changes []ContentChange)

// Subscription cancels a registered Observer.
type Subscription struct {
	notifier *Notifier
	id       uint64
}

// Close unregisters the observer. Safe to call more than once.
func (s *Subscription) Close() {
	if s == nil || s.notifier == nil {
		return
	}
	s.notifier.remove(s.id)
	s.notifier = nil
}

// Notifier fans out content-change batches to every subscribed Observer,
// adapted from the teacher repo's config/notify observer registry (a
// global-subscriber map guarded by a mutex, minus the path-scoped
// subscriptions that buffer observers have no use for).
type Notifier struct {
	mu        sync.RWMutex
	observers map[uint64]Observer
	nextID    uint64
}

// NewNotifier returns a ready-to-use Notifier.
func NewNotifier() *Notifier {
	return &Notifier{observers: make(map[uint64]Observer)}
}

// Subscribe registers obs and returns a Subscription that cancels it.
func (n *Notifier) Subscribe(obs Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.nextID++
	id := n.nextID
	n.observers[id] = obs
	return &Subscription{notifier: n, id: id}
}

func (n *Notifier) remove(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.observers, id)
}

// Notify delivers changes to every currently-subscribed observer. Called
// after a successful ApplyEdits, once the buffer has committed.
func (n *Notifier) Notify(changes []ContentChange) {
	if len(changes) == 0 {
		return
	}
	n.mu.RLock()
	obs := make([]Observer, 0, len(n.observers))
	for _, o := range n.observers {
		obs = append(obs, o)
	}
	n.mu.RUnlock()

	for _, o := range obs {
		o(changes)
	}
}
