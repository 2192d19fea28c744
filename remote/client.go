package remote

import (
	"context"
	"fmt"

	"github.com/maxpoletaev/kivimon/metrics"
	"github.com/maxpoletaev/kivimon/nodestatus"
)

// Endpoints are the path prefixes of the cluster REST endpoints. The target
// host is appended to each of them.
type Endpoints struct {
	State      string
	Restart    string
	Stop       string
	Start      string
	Log        string
	FourLetter string
	SetConfig  string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		State:      "cluster/state/",
		Restart:    "cluster/restart/",
		Stop:       "cluster/stop/",
		Start:      "cluster/start/",
		Log:        "cluster/log/",
		FourLetter: "cluster/4ltr/",
		SetConfig:  "cluster/set/",
	}
}

// Client exposes the cluster endpoints as typed calls. Status queries fail
// silently, administrative calls notify the user on failure.
type Client struct {
	inv       *Invoker
	endpoints Endpoints
}

func NewClient(inv *Invoker, endpoints Endpoints) *Client {
	return &Client{
		inv:       inv,
		endpoints: endpoints,
	}
}

// GetState returns the status report of the node.
func (c *Client) GetState(ctx context.Context, host string) (nodestatus.Report, error) {
	var report nodestatus.Report

	if err := c.inv.Call(ctx, c.endpoints.State, host, &report); err != nil {
		return nodestatus.Report{}, err
	}

	return report, nil
}

func (c *Client) Restart(ctx context.Context, host string) error {
	err := c.inv.Do(ctx, c.endpoints.Restart, host, nil)
	metrics.ObserveAction("restart", err)

	return err
}

func (c *Client) Stop(ctx context.Context, host string) error {
	err := c.inv.Do(ctx, c.endpoints.Stop, host, nil)
	metrics.ObserveAction("stop", err)

	return err
}

func (c *Client) Start(ctx context.Context, host string) error {
	err := c.inv.Do(ctx, c.endpoints.Start, host, nil)
	metrics.ObserveAction("start", err)

	return err
}

// SetSwitch turns a node switch on or off.
func (c *Client) SetSwitch(ctx context.Context, host string, kind nodestatus.SwitchKind, enabled bool) error {
	base := fmt.Sprintf("%s%s/%t/", c.endpoints.SetConfig, kind, enabled)
	err := c.inv.Do(ctx, base, host, nil)
	metrics.ObserveAction("set_switch", err)

	return err
}

// FetchLog returns the recent log of the node.
func (c *Client) FetchLog(ctx context.Context, host string) (string, error) {
	var text string

	err := c.inv.Do(ctx, c.endpoints.Log, host, &text)
	metrics.ObserveAction("log", err)

	return text, err
}

// FetchDiagnostic runs a four-letter diagnostic command on the node.
func (c *Client) FetchDiagnostic(ctx context.Context, host, word string) (string, error) {
	word, err := nodestatus.ParseDiagnosticWord(word)
	if err != nil {
		return "", err
	}

	var text string

	base := c.endpoints.FourLetter + word + "/"
	err = c.inv.Do(ctx, base, host, &text)
	metrics.ObserveAction("diagnostic", err)

	return text, err
}
