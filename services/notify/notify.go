package notify

import "encoding/json"

// Snapshot is one unit of fan-out: the latest known state of a single
// record, tagged with the websocket event name it should be delivered as.
// Version is assigned by the relay at publish time and is strictly
// increasing per RecordID.
type Snapshot struct {
	Kind     string          `json:"kind"`
	RecordID string          `json:"record_id"`
	Version  uint64          `json:"version"`
	Payload  json.RawMessage `json:"payload"`
}

// Filter decides whether a subscriber wants a snapshot. A nil filter
// accepts everything.
type Filter func(Snapshot) bool

// Relay fans snapshots out to per-subject subscribers
type Relay interface {
	Subscribe(subjectID string, filter Filter) Subscription
	Publish(subjectID string, snap Snapshot)
}

// Subscription is one subscriber's view of the relay. Snapshots yields
// deliveries in order and is closed once the subscription is cancelled.
// Cancel is idempotent and stops delivery immediately.
type Subscription interface {
	Snapshots() <-chan Snapshot
	Cancel()
}
