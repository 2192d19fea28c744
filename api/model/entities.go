package model

import "time"

type Control struct {
	Visible bool `json:"Visible"`
	Enabled bool `json:"Enabled"`
}

type Power struct {
	Action  string `json:"Action"`
	Label   string `json:"Label"`
	Enabled bool   `json:"Enabled"`
}

type Switch struct {
	Kind    string `json:"Kind"`
	Visible bool   `json:"Visible"`
	Enabled bool   `json:"Enabled"`
	Checked bool   `json:"Checked"`
}

type Node struct {
	Index      int      `json:"Index"`
	ID         int      `json:"ID"`
	Host       string   `json:"Host"`
	Tag        string   `json:"Tag,omitempty"`
	Local      bool     `json:"Local"`
	Reported   bool     `json:"Reported"`
	Failed     bool     `json:"Failed"`
	State      string   `json:"State"`
	Running    bool     `json:"Running"`
	Status     string   `json:"Status"`
	Color      string   `json:"Color"`
	Power      Power    `json:"Power"`
	Diagnostic Control  `json:"Diagnostic"`
	Log        Control  `json:"Log"`
	Window     Control  `json:"Window"`
	Switches   []Switch `json:"Switches"`
}

type Notification struct {
	Title   string    `json:"Title"`
	Message string    `json:"Message"`
	Host    string    `json:"Host,omitempty"`
	Time    time.Time `json:"Time"`
}
