package api

import "github.com/maxpoletaev/kivimon/api/handler"

type (
	Board = handler.Board
	Inbox = handler.Inbox
)
