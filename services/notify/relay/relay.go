package relay

import (
	"sync"

	"github.com/rickshawlabs/dispatch/services/notify"
)

var _ notify.Relay = (*Relay)(nil)

// Relay is an in-process fan-out hub. Publishers hand it snapshots keyed
// by subject ID and it forwards them to every live subscription on that
// subject. Publishing never blocks: each subscription owns a bounded
// queue, and when the queue is full the snapshot for the same record is
// coalesced so the subscriber only sees the latest state.
type Relay struct {
	mu        sync.Mutex
	versions  map[string]uint64
	subs      map[string]map[*Subscription]struct{}
	queueSize int
}

// NewRelay creates a relay whose subscriptions buffer up to queueSize
// undelivered snapshots each
func NewRelay(queueSize int) *Relay {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Relay{
		versions:  make(map[string]uint64),
		subs:      make(map[string]map[*Subscription]struct{}),
		queueSize: queueSize,
	}
}

// Subscribe registers a new subscriber for subjectID. A nil filter
// accepts every snapshot on the subject.
func (r *Relay) Subscribe(subjectID string, filter notify.Filter) notify.Subscription {
	s := &Subscription{
		relay:     r,
		subjectID: subjectID,
		filter:    filter,
		size:      r.queueSize,
		wake:      make(chan struct{}, 1),
		done:      make(chan struct{}),
		out:       make(chan notify.Snapshot),
	}

	r.mu.Lock()
	if r.subs[subjectID] == nil {
		r.subs[subjectID] = make(map[*Subscription]struct{})
	}
	r.subs[subjectID][s] = struct{}{}
	r.mu.Unlock()

	go s.pump()
	return s
}

// Publish stamps the snapshot with the next version for its record and
// enqueues it on every matching subscription. It never blocks on slow
// subscribers.
//
// The relay lock is held across the enqueue loop so that stamping and
// enqueueing are one atomic step: concurrent publishers for the same
// record cannot interleave and land in a subscriber's queue out of
// version order. enqueue only takes the subscription's own mutex, so
// the lock order relay -> subscription never inverts.
func (r *Relay) Publish(subjectID string, snap notify.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.versions[snap.RecordID]++
	snap.Version = r.versions[snap.RecordID]

	for s := range r.subs[subjectID] {
		if s.filter != nil && !s.filter(snap) {
			continue
		}
		s.enqueue(snap)
	}
}

func (r *Relay) remove(s *Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if set, ok := r.subs[s.subjectID]; ok {
		delete(set, s)
		if len(set) == 0 {
			delete(r.subs, s.subjectID)
		}
	}
}

// Subscription is one subscriber's bounded delivery queue plus the pump
// goroutine draining it
type Subscription struct {
	relay     *Relay
	subjectID string
	filter    notify.Filter
	size      int

	mu    sync.Mutex
	queue []notify.Snapshot

	wake       chan struct{}
	done       chan struct{}
	out        chan notify.Snapshot
	cancelOnce sync.Once
}

// Snapshots yields deliveries in order. The channel is closed after
// Cancel.
func (s *Subscription) Snapshots() <-chan notify.Snapshot {
	return s.out
}

// Cancel detaches the subscription from the relay and stops delivery.
// Queued snapshots are discarded, not flushed. Safe to call more than
// once.
func (s *Subscription) Cancel() {
	s.cancelOnce.Do(func() {
		s.relay.remove(s)
		close(s.done)
	})
}

func (s *Subscription) enqueue(snap notify.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) < s.size {
		s.queue = append(s.queue, snap)
	} else {
		// Queue is full. Latest-wins: replace the undelivered snapshot
		// for the same record, or failing that drop the oldest entry.
		// Only a strictly newer version may replace a queued one.
		replaced := false
		for i := range s.queue {
			if s.queue[i].RecordID == snap.RecordID {
				if snap.Version > s.queue[i].Version {
					s.queue[i] = snap
				}
				replaced = true
				break
			}
		}
		if !replaced {
			copy(s.queue, s.queue[1:])
			s.queue[len(s.queue)-1] = snap
		}
	}

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Subscription) pump() {
	defer close(s.out)

	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
		}

		for {
			s.mu.Lock()
			if len(s.queue) == 0 {
				s.mu.Unlock()
				break
			}
			snap := s.queue[0]
			s.queue = s.queue[1:]
			s.mu.Unlock()

			select {
			case <-s.done:
				return
			case s.out <- snap:
			}
		}
	}
}
