package slackapp

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/DIMO-Network/slack-app-home/internal/views"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeSocket stands in for the socket mode connection and records acknowledgements.
type fakeSocket struct {
	mu     sync.Mutex
	acked  []string
	runErr error
}

func (f *fakeSocket) RunContext(ctx context.Context) error {
	if f.runErr != nil {
		return f.runErr
	}
	<-ctx.Done()
	return ctx.Err()
}

func (f *fakeSocket) Ack(req socketmode.Request, _ ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acked = append(f.acked, req.EnvelopeID)
}

func (f *fakeSocket) Acked() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.acked...)
}

func homeOpenedDelivery(envelopeID string) socketmode.Event {
	return socketmode.Event{
		Type: socketmode.EventTypeEventsAPI,
		Data: slackevents.EventsAPIEvent{
			Type: slackevents.CallbackEvent,
			InnerEvent: slackevents.EventsAPIInnerEvent{
				Type: string(slackevents.AppHomeOpened),
				Data: &slackevents.AppHomeOpenedEvent{User: testUser, Tab: "home"},
			},
		},
		Request: &socketmode.Request{Type: "events_api", EnvelopeID: envelopeID},
	}
}

func interactiveDelivery(t *testing.T, envelopeID, payload string) socketmode.Event {
	t.Helper()
	var callback slack.InteractionCallback
	require.NoError(t, json.Unmarshal([]byte(payload), &callback))
	return socketmode.Event{
		Type:    socketmode.EventTypeInteractive,
		Data:    callback,
		Request: &socketmode.Request{Type: "interactive", EnvelopeID: envelopeID, Payload: json.RawMessage(payload)},
	}
}

func TestController_HandleSocketEvent(t *testing.T) {
	t.Parallel()

	t.Run("app home opened is acknowledged and publishes home", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		socket := &fakeSocket{}

		h.messenger.EXPECT().PublishHome(gomock.Any(), testUser, gomock.Any()).Return(nil).Times(1)

		h.controller.HandleSocketEvent(context.Background(), socket, homeOpenedDelivery("env-1"))
		assert.Equal(t, []string{"env-1"}, socket.Acked())
	})

	t.Run("publish failure is swallowed after the ack", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		socket := &fakeSocket{}

		h.messenger.EXPECT().PublishHome(gomock.Any(), testUser, gomock.Any()).Return(assert.AnError).Times(1)

		h.controller.HandleSocketEvent(context.Background(), socket, homeOpenedDelivery("env-1"))
		assert.Equal(t, []string{"env-1"}, socket.Acked())
	})

	t.Run("other callback events are acknowledged only", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		socket := &fakeSocket{}

		evt := socketmode.Event{
			Type: socketmode.EventTypeEventsAPI,
			Data: slackevents.EventsAPIEvent{
				Type:       slackevents.CallbackEvent,
				InnerEvent: slackevents.EventsAPIInnerEvent{Type: "message", Data: &slackevents.MessageEvent{}},
			},
			Request: &socketmode.Request{Type: "events_api", EnvelopeID: "env-2"},
		}
		h.controller.HandleSocketEvent(context.Background(), socket, evt)
		assert.Equal(t, []string{"env-2"}, socket.Acked())
	})

	t.Run("add action without a block id opens the modal", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		socket := &fakeSocket{}

		h.messenger.EXPECT().OpenModal(gomock.Any(), "trig", gomock.Any()).Return(nil).Times(1)

		payload := `{"type":"block_actions","trigger_id":"trig","user":{"id":"U1"},"actions":[{"action_id":"add_note"}]}`
		h.controller.HandleSocketEvent(context.Background(), socket, interactiveDelivery(t, "env-3", payload))
		assert.Equal(t, []string{"env-3"}, socket.Acked())
	})

	t.Run("submission is acknowledged before the home render", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		socket := &fakeSocket{}

		h.messenger.EXPECT().PublishHome(gomock.Any(), testUser, gomock.Any()).Return(nil).Times(1)

		h.controller.HandleSocketEvent(context.Background(), socket, interactiveDelivery(t, "env-4", submissionPayload))
		assert.Equal(t, []string{"env-4"}, socket.Acked())
		require.Len(t, h.pending, 1)
		h.runPending()
	})

	t.Run("deliveries without an envelope are not acknowledged", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		socket := &fakeSocket{}

		h.controller.HandleSocketEvent(context.Background(), socket, socketmode.Event{
			Type:    socketmode.EventTypeHello,
			Request: &socketmode.Request{Type: "hello"},
		})
		h.controller.HandleSocketEvent(context.Background(), socket, socketmode.Event{Type: socketmode.EventTypeConnected})
		h.controller.HandleSocketEvent(context.Background(), socket, socketmode.Event{Type: socketmode.EventTypeConnectionError})
		assert.Empty(t, socket.Acked())
	})

	t.Run("slash commands are acknowledged and ignored", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		socket := &fakeSocket{}

		h.controller.HandleSocketEvent(context.Background(), socket, socketmode.Event{
			Type:    socketmode.EventTypeSlashCommand,
			Data:    slack.SlashCommand{Command: "/stickie"},
			Request: &socketmode.Request{Type: "slash_commands", EnvelopeID: "env-5"},
		})
		assert.Equal(t, []string{"env-5"}, socket.Acked())
	})
}

func TestController_RunSocketMode(t *testing.T) {
	t.Parallel()

	t.Run("dispatches deliveries until cancelled", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		socket := &fakeSocket{}
		deliveries := make(chan socketmode.Event, 1)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		published := make(chan struct{})
		h.messenger.EXPECT().
			PublishHome(gomock.Any(), testUser, gomock.Any()).
			DoAndReturn(func(context.Context, string, views.Document) error {
				close(published)
				return nil
			}).
			Times(1)

		done := make(chan error, 1)
		go func() { done <- h.controller.RunSocketMode(ctx, socket, deliveries) }()

		deliveries <- homeOpenedDelivery("env-1")
		select {
		case <-published:
		case <-time.After(2 * time.Second):
			t.Fatal("home was not published")
		}
		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("socket mode did not stop")
		}
		assert.Equal(t, []string{"env-1"}, socket.Acked())
	})

	t.Run("connection failure is returned", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		socket := &fakeSocket{runErr: assert.AnError}

		err := h.controller.RunSocketMode(context.Background(), socket, make(chan socketmode.Event))
		require.ErrorIs(t, err, assert.AnError)
		require.ErrorIs(t, err, errSocketClosed)
	})
}
