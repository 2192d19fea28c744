package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/kivimon/notify"
)

const maxResponseSize = 4 << 20

// Invoker performs remote calls against the dashboard REST endpoints. Every
// call carries a timestamp query parameter so that intermediate caches never
// serve a stale response.
type Invoker struct {
	baseURL  *url.URL
	client   HTTPClient
	notifier notify.Notifier
	logger   kitlog.Logger
	now      func() time.Time
}

func NewInvoker(baseURL string, opts ...Option) (*Invoker, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	inv := &Invoker{
		baseURL:  u,
		client:   &http.Client{Timeout: 10 * time.Second},
		notifier: notify.Nop,
		logger:   kitlog.NewNopLogger(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(inv)
	}

	return inv, nil
}

func (inv *Invoker) endpointURL(base, host string) string {
	u := inv.baseURL.JoinPath(base + url.PathEscape(host))

	q := u.Query()
	q.Set("ts", strconv.FormatInt(inv.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	return u.String()
}

// Call performs the request and decodes the envelope payload into out, which
// may be nil if the payload is not needed. Failures are returned to the caller
// without notifying the user.
func (inv *Invoker) Call(ctx context.Context, base, host string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, inv.endpointURL(base, host), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := inv.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", host, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return &HTTPError{Host: host, StatusCode: resp.StatusCode}
	}

	var env Envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&env); err != nil {
		return fmt.Errorf("%s: decode envelope: %w", host, err)
	}

	if !env.Success {
		return &EnvelopeError{Host: host, Message: env.ErrorMessage}
	}

	if out != nil && len(env.Response) > 0 {
		if err := json.Unmarshal(env.Response, out); err != nil {
			return fmt.Errorf("%s: %w: %v", host, ErrBadPayload, err)
		}
	}

	return nil
}

// Do is the same as Call, but a failure is also reported to the user.
func (inv *Invoker) Do(ctx context.Context, base, host string, out any) error {
	err := inv.Call(ctx, base, host, out)
	if err != nil {
		level.Debug(inv.logger).Log("msg", "remote call failed", "base", base, "host", host, "err", err)

		inv.notifier.Notify(notify.Notification{
			Title:   "Error",
			Message: fmt.Sprintf("Could not complete message to %s. Message: %s", host, Message(err)),
			Host:    host,
			Time:    inv.now(),
		})
	}

	return err
}
