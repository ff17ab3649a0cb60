package chaosgame

import "sync"

// Event identifies which driver operation just completed.
type Event int

const (
	// EventStepsCompleted fires after a ChaosGame finishes a batch of steps.
	EventStepsCompleted Event = iota
	// EventRenderCompleted fires after an ExploreGame finishes a sweep.
	EventRenderCompleted
	// EventDescriptionChanged fires when a driver's description or window
	// is replaced.
	EventDescriptionChanged
)

// notifier is the callback fan-out embedded in both drivers. It replaces the
// observer wiring a UI would otherwise hook into the model: callers register
// a plain function and are invoked synchronously after each completed
// operation.
type notifier struct {
	mu   sync.Mutex
	subs map[int]func(Event)
	next int
}

// Subscribe registers fn to be called after each completed operation.
// The returned function cancels the subscription.
func (n *notifier) Subscribe(fn func(Event)) (cancel func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = make(map[int]func(Event))
	}
	id := n.next
	n.next++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *notifier) notify(e Event) {
	n.mu.Lock()
	fns := make([]func(Event), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}
