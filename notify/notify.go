package notify

import (
	"sync"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Notification is a user-visible message about a failed operation.
type Notification struct {
	Title   string
	Message string
	Host    string
	Time    time.Time
}

// Notifier delivers notifications to the user.
type Notifier interface {
	Notify(n Notification)
}

// Func adapts a function to the Notifier interface.
type Func func(n Notification)

func (f Func) Notify(n Notification) {
	f(n)
}

// Multi delivers every notification to all of its notifiers.
type Multi []Notifier

func (m Multi) Notify(n Notification) {
	for _, notifier := range m {
		notifier.Notify(n)
	}
}

// Nop discards notifications.
var Nop Notifier = Func(func(Notification) {})

// Inbox keeps the most recent notifications until they are drained. When the
// inbox is full, the oldest notification is dropped.
type Inbox struct {
	mut      sync.Mutex
	items    []Notification
	capacity int
	dropped  int
}

func NewInbox(capacity int) *Inbox {
	if capacity < 1 {
		capacity = 1
	}

	return &Inbox{
		items:    make([]Notification, 0, capacity),
		capacity: capacity,
	}
}

func (in *Inbox) Notify(n Notification) {
	in.mut.Lock()
	defer in.mut.Unlock()

	if len(in.items) == in.capacity {
		copy(in.items, in.items[1:])
		in.items = in.items[:len(in.items)-1]
		in.dropped++
	}

	in.items = append(in.items, n)
}

// Drain returns all pending notifications, oldest first, and empties the inbox.
func (in *Inbox) Drain() []Notification {
	in.mut.Lock()
	defer in.mut.Unlock()

	items := make([]Notification, len(in.items))
	copy(items, in.items)
	in.items = in.items[:0]

	return items
}

// Len returns the number of pending notifications.
func (in *Inbox) Len() int {
	in.mut.Lock()
	defer in.mut.Unlock()

	return len(in.items)
}

// Dropped returns how many notifications were discarded because the inbox was full.
func (in *Inbox) Dropped() int {
	in.mut.Lock()
	defer in.mut.Unlock()

	return in.dropped
}

type logNotifier struct {
	logger kitlog.Logger
}

// NewLogNotifier returns a notifier that writes notifications to the log.
func NewLogNotifier(logger kitlog.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (l *logNotifier) Notify(n Notification) {
	level.Error(l.logger).Log(
		"msg", n.Message,
		"title", n.Title,
		"host", n.Host,
	)
}
