package notify

// Notification is a title/message pair delivered to reviewers' channels.
type Notification struct {
	Title   string
	Message string
}

// Notifier delivers notifications to one channel.
type Notifier interface {
	Send(n Notification) error
	Name() string
}

// Discard is a Notifier that drops everything; used when no webhook is
// configured so callers never need a nil check.
type Discard struct{}

func (Discard) Send(Notification) error { return nil }
func (Discard) Name() string            { return "discard" }
