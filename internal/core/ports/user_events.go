package ports

// UserEvent describes a user lifecycle change published after a successful
// mutation of the credential store.
type UserEvent struct {
	Email  string
	Action string
}

const (
	UserEventRegistered = "registered"
	UserEventUpdated    = "updated"
	UserEventDeleted    = "deleted"
)

// EventSink consumes user lifecycle events. Publishing is fire-and-forget.
type EventSink interface {
	Publish(event UserEvent)
}
