package notify

import (
	"bytes"
	"testing"

	kitlog "github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInbox(t *testing.T) {
	inbox := NewInbox(2)

	inbox.Notify(Notification{Message: "one"})
	inbox.Notify(Notification{Message: "two"})
	inbox.Notify(Notification{Message: "three"})

	require.Equal(t, 2, inbox.Len())
	assert.Equal(t, 1, inbox.Dropped())

	items := inbox.Drain()
	require.Len(t, items, 2)
	assert.Equal(t, "two", items[0].Message)
	assert.Equal(t, "three", items[1].Message)

	assert.Empty(t, inbox.Drain())
	assert.Equal(t, 0, inbox.Len())
}

func TestMulti(t *testing.T) {
	var got []string

	collect := Func(func(n Notification) {
		got = append(got, n.Host)
	})

	Multi{collect, collect, Nop}.Notify(Notification{Host: "h1"})

	assert.Equal(t, []string{"h1", "h1"}, got)
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer

	notifier := NewLogNotifier(kitlog.NewLogfmtLogger(&buf))
	notifier.Notify(Notification{Title: "Error", Message: "boom", Host: "h1"})

	assert.Contains(t, buf.String(), "level=error")
	assert.Contains(t, buf.String(), "msg=boom")
	assert.Contains(t, buf.String(), "host=h1")
}
