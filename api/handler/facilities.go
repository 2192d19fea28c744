package handler

import (
	"github.com/maxpoletaev/kivimon/notify"
	"github.com/maxpoletaev/kivimon/view"
)

type Board interface {
	Snapshot() view.Snapshot
	Control(index int) (*view.Controls, error)
}

type Inbox interface {
	Drain() []notify.Notification
}
