package models

// SwapEvent is published to Kafka on every swap lifecycle transition so
// clients can update status displays without polling.
type SwapEvent struct {
	EventID   string `json:"event_id"`   // EventID is a unique identifier for the event.
	SwapID    string `json:"swap_id"`    // SwapID identifies the swap that transitioned.
	NewStatus string `json:"new_status"` // NewStatus is the status the swap transitioned into.
	Timestamp int64  `json:"timestamp"`  // Timestamp is the Unix time of the transition.
}
