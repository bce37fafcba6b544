package models

// Event represents an audit event published after a successful write,
// e.g. a created assessment or a generated plan.
type Event struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	UserID    string `json:"user_id"`   // UserID is the identifier of the user the event belongs to.
	Kind      string `json:"kind"`      // Kind describes the event, e.g. "assessment.created" or "plan.generated".
	Subject   string `json:"subject"`   // Subject is the identifier of the created entity.
}
