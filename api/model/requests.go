package model

type GetNodesResponse struct {
	Generation uint64 `json:"Generation"`
	Nodes      []Node `json:"Nodes"`
}

type SetSwitchParams struct {
	Enabled bool `json:"Enabled"`
}

type ConfirmationResponse struct {
	Prompt string `json:"Prompt"`
}

type TextResponse struct {
	Text string `json:"Text"`
}

type WindowResponse struct {
	URL string `json:"URL"`
}

type ErrorResponse struct {
	Error string `json:"Error"`
}

type GetNotificationsResponse struct {
	Notifications []Notification `json:"Notifications"`
}
