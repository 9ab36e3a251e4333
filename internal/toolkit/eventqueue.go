package toolkit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/toolkit-labs/awtaccess/internal/accessor"
)

// EventQueue is a FIFO of events dispatched by Run or by a secondary loop.
type EventQueue struct {
	r *accessor.Registry

	mu         sync.Mutex
	events     []accessor.AWTEvent
	shutdown   bool
	fw         accessor.FwDispatcher
	mostRecent int64

	wake        chan struct{}
	dispatching atomic.Int32
}

// NewEventQueue creates an empty queue bound to r.
func NewEventQueue(r *accessor.Registry) *EventQueue {
	r.EnsureInitialized(accessor.KindEventQueue)
	return newEventQueue(r)
}

func newEventQueue(r *accessor.Registry) *EventQueue {
	return &EventQueue{r: r, wake: make(chan struct{}, 1)}
}

func (q *EventQueue) EventQueueOwner() {}

// PostEvent marks e posted and appends it to the queue.
func (q *EventQueue) PostEvent(e accessor.AWTEvent) {
	q.r.AWTEvent().SetPosted(e)
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
	q.signal()
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

func (q *EventQueue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// DispatchNext dispatches the oldest queued event. It returns false when the
// queue is empty.
func (q *EventQueue) DispatchNext() bool {
	q.mu.Lock()
	if len(q.events) == 0 {
		q.mu.Unlock()
		return false
	}
	e := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	q.mostRecent = eventOf(e).When()
	q.mu.Unlock()

	q.dispatch(e)
	return true
}

func (q *EventQueue) dispatch(e accessor.AWTEvent) {
	q.dispatching.Add(1)
	defer q.dispatching.Add(-1)

	if ie, ok := e.(*InvocationEvent); ok {
		ie.Dispatch()
		return
	}
	if c, ok := eventOf(e).Source().(accessor.Component); ok && c != nil {
		q.r.Component().ProcessEvent(c, e)
	}
}

// Run dispatches events until ctx is done or the queue is woken for
// shutdown. Events queued before shutdown are dispatched first.
func (q *EventQueue) Run(ctx context.Context) error {
	for {
		for q.DispatchNext() {
		}
		q.mu.Lock()
		done := q.shutdown
		q.mu.Unlock()
		if done {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.wake:
		}
	}
}

func eventQueueOf(q accessor.EventQueue) *EventQueue {
	if eq, ok := q.(*EventQueue); ok {
		return eq
	}
	panic(fmt.Sprintf("toolkit: %T is not a toolkit event queue", q))
}

// eventQueueStatics holds the registry's system event queue, which serves
// InvokeAndWait. The queue's dispatch loop starts on first use and stops
// when the queue is woken for shutdown.
type eventQueueStatics struct {
	system *EventQueue
	start  sync.Once
}

func eventQueueStaticsOf(r *accessor.Registry) *eventQueueStatics {
	return accessor.Statics(r, accessor.KindEventQueue, func() *eventQueueStatics {
		return &eventQueueStatics{system: newEventQueue(r)}
	})
}

type eventQueueAccessor struct {
	s *eventQueueStatics
}

func setupEventQueue(r *accessor.Registry) {
	r.SetEventQueue(eventQueueAccessor{s: eventQueueStaticsOf(r)})
}

// SystemEventQueue returns the queue that serves InvokeAndWait for r.
func SystemEventQueue(r *accessor.Registry) *EventQueue {
	r.EnsureInitialized(accessor.KindEventQueue)
	return eventQueueStaticsOf(r).system
}

// IsDispatchThread reports whether q is inside a dispatch. A forwarding
// dispatcher answers for the queue when one is set.
func (a eventQueueAccessor) IsDispatchThread(q accessor.EventQueue) bool {
	eq := eventQueueOf(q)
	eq.mu.Lock()
	fw := eq.fw
	eq.mu.Unlock()
	if fw != nil {
		return fw.IsDispatchThread()
	}
	return eq.dispatching.Load() > 0
}

// RemoveSourceEvents drops queued events whose source is source. Unless
// removeAll is set, key events are kept. Dropped invocation events are
// disposed so their waiters return.
func (a eventQueueAccessor) RemoveSourceEvents(q accessor.EventQueue, source any, removeAll bool) {
	eq := eventQueueOf(q)
	eq.mu.Lock()
	var dropped []*InvocationEvent
	kept := eq.events[:0]
	for _, e := range eq.events {
		_, isKey := e.(accessor.KeyEvent)
		if eventOf(e).Source() != source || (isKey && !removeAll) {
			kept = append(kept, e)
			continue
		}
		if ie, ok := e.(*InvocationEvent); ok {
			dropped = append(dropped, ie)
		}
	}
	for i := len(kept); i < len(eq.events); i++ {
		eq.events[i] = nil
	}
	eq.events = kept
	eq.mu.Unlock()

	for _, ie := range dropped {
		eq.r.InvocationEvent().Dispose(ie)
	}
}

func (a eventQueueAccessor) NoEvents(q accessor.EventQueue) bool {
	return eventQueueOf(q).Len() == 0
}

func (a eventQueueAccessor) Wakeup(q accessor.EventQueue, isShutdown bool) {
	eq := eventQueueOf(q)
	if isShutdown {
		eq.mu.Lock()
		eq.shutdown = true
		eq.mu.Unlock()
	}
	eq.signal()
}

// InvokeAndWait runs fn on the system event queue and waits for it. A
// forwarding dispatcher on the system queue runs fn instead.
func (a eventQueueAccessor) InvokeAndWait(ctx context.Context, source any, fn func()) error {
	e := newInvocationEvent(source, fn)
	system := a.s.system

	system.mu.Lock()
	fw := system.fw
	system.mu.Unlock()
	if fw != nil {
		fw.ScheduleDispatch(e.Dispatch)
	} else {
		a.s.start.Do(func() {
			go system.Run(context.Background())
		})
		system.PostEvent(e)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-e.Done():
		return e.Err()
	}
}

func (a eventQueueAccessor) SetFwDispatcher(q accessor.EventQueue, d accessor.FwDispatcher) {
	eq := eventQueueOf(q)
	eq.mu.Lock()
	eq.fw = d
	eq.mu.Unlock()
}

// MostRecentEventTime returns the timestamp of the last event taken off q,
// in Unix milliseconds, or zero.
func (a eventQueueAccessor) MostRecentEventTime(q accessor.EventQueue) int64 {
	eq := eventQueueOf(q)
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.mostRecent
}

func (a eventQueueAccessor) CreateSecondaryLoop(q accessor.EventQueue, cond func() bool) accessor.SecondaryLoop {
	eq := eventQueueOf(q)
	eq.mu.Lock()
	fw := eq.fw
	eq.mu.Unlock()
	if fw != nil {
		return fw.CreateSecondaryLoop()
	}
	return &secondaryLoop{q: eq, cond: cond}
}

// secondaryLoop pumps q on the goroutine that calls Enter while cond holds.
type secondaryLoop struct {
	q    *EventQueue
	cond func() bool

	mu      sync.Mutex
	running bool
	exit    chan struct{}
}

// Enter blocks, dispatching events, until Exit is called or cond reports
// false. It returns false if the loop is already running.
func (l *secondaryLoop) Enter() bool {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return false
	}
	l.running = true
	l.exit = make(chan struct{})
	exit := l.exit
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
	}()

	for l.cond == nil || l.cond() {
		select {
		case <-exit:
			return true
		default:
		}
		if l.q.DispatchNext() {
			continue
		}
		select {
		case <-exit:
			return true
		case <-l.q.wake:
		}
	}
	return true
}

// Exit stops a running loop. It returns false if the loop is not running.
func (l *secondaryLoop) Exit() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.running {
		return false
	}
	select {
	case <-l.exit:
		return false
	default:
		close(l.exit)
		return true
	}
}
