package session

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

// DefaultNotificationTTL is how long a notification stays visible.
const DefaultNotificationTTL = 5 * time.Second

// Kind is the severity of a notification.
type Kind string

// Notification kinds.
const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notification is the single banner shown to the user.
type Notification struct {
	ID      uuid.UUID
	Kind    Kind
	Text    string
	ShownAt time.Time
}

// notifier holds the visible notification. Each notification arms its own
// timer, and a timer only clears the notification it was armed for.
type notifier struct {
	mu      sync.Mutex
	clock   clock.Clock
	ttl     time.Duration
	current *Notification
	timer   *clock.Timer
	stopped bool

	onShow func(Notification)
}

func newNotifier(c clock.Clock, ttl time.Duration, onShow func(Notification)) *notifier {
	return &notifier{clock: c, ttl: ttl, onShow: onShow}
}

func (n *notifier) show(kind Kind, text string) Notification {
	n.mu.Lock()
	note := Notification{
		ID:      uuid.New(),
		Kind:    kind,
		Text:    text,
		ShownAt: n.clock.Now(),
	}

	if n.stopped {
		n.mu.Unlock()
		return note
	}

	if n.timer != nil {
		n.timer.Stop()
	}
	n.current = &note
	n.timer = n.clock.AfterFunc(n.ttl, func() { n.clear(note.ID) })
	onShow := n.onShow
	n.mu.Unlock()

	if onShow != nil {
		onShow(note)
	}
	return note
}

func (n *notifier) clear(id uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current != nil && n.current.ID == id {
		n.current = nil
	}
}

// visible returns the notification on display. A notification whose TTL has
// elapsed is not visible even if its timer has not run yet.
func (n *notifier) visible() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return Notification{}, false
	}
	if n.clock.Since(n.current.ShownAt) >= n.ttl {
		return Notification{}, false
	}
	return *n.current, true
}

func (n *notifier) stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = nil
	n.current = nil
	n.stopped = true
}
