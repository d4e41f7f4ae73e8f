package slackapp

import (
	"context"
	"errors"

	"github.com/DIMO-Network/slack-app-home/internal/metrics"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
	"golang.org/x/sync/errgroup"
)

var errSocketClosed = errors.New("socket mode connection closed")

// SocketClient is the part of *socketmode.Client used to receive Slack deliveries over a
// websocket instead of HTTP callbacks.
type SocketClient interface {
	RunContext(ctx context.Context) error
	Ack(req socketmode.Request, payload ...any)
}

// RunSocketMode keeps the socket mode connection open and dispatches deliveries read from
// deliveries until ctx is cancelled.
func (s *Controller) RunSocketMode(ctx context.Context, client SocketClient, deliveries <-chan socketmode.Event) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		err := client.RunContext(groupCtx)
		if ctx.Err() != nil {
			return nil
		}
		return errors.Join(errSocketClosed, err)
	})
	group.Go(func() error {
		for {
			select {
			case <-groupCtx.Done():
				return nil
			case evt, ok := <-deliveries:
				if !ok {
					return nil
				}
				s.HandleSocketEvent(groupCtx, client, evt)
			}
		}
	})
	return group.Wait()
}

// HandleSocketEvent acknowledges a socket mode delivery and routes it the same way the
// HTTP endpoints do. Socket deliveries carry no request signature.
func (s *Controller) HandleSocketEvent(ctx context.Context, client SocketClient, evt socketmode.Event) {
	logger := s.logger.With().Str("socket_event", string(evt.Type)).Logger()

	switch evt.Type {
	case socketmode.EventTypeEventsAPI:
		ack(client, evt)
		apiEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
		if !ok {
			logger.Warn().Msgf("Unexpected events api payload %T", evt.Data)
			return
		}
		metrics.InboundEvents.WithLabelValues("socket", apiEvent.Type).Inc()
		switch inner := apiEvent.InnerEvent.Data.(type) {
		case *slackevents.AppHomeOpenedEvent:
			logger.Debug().Str("user", inner.User).Str("tab", inner.Tab).Msg("App home opened")
			s.publishHome(ctx, &logger, inner.User, nil)
		default:
			logger.Debug().Str("event_type", apiEvent.InnerEvent.Type).Msg("Ignoring callback event")
		}

	case socketmode.EventTypeInteractive:
		ack(client, evt)
		callback, ok := evt.Data.(slack.InteractionCallback)
		if !ok {
			logger.Warn().Msgf("Unexpected interaction payload %T", evt.Data)
			return
		}
		metrics.InboundEvents.WithLabelValues("socket", interactionLabel(callback.Type)).Inc()
		var actionID string
		if evt.Request != nil {
			actionID = firstActionID(evt.Request.Payload)
		}
		s.handleInteraction(ctx, &logger, &callback, actionID)

	case socketmode.EventTypeConnecting:
		logger.Info().Msg("Connecting to Slack in socket mode")
	case socketmode.EventTypeConnected:
		logger.Info().Msg("Connected to Slack in socket mode")
	case socketmode.EventTypeInvalidAuth, socketmode.EventTypeConnectionError, socketmode.EventTypeIncomingError,
		socketmode.EventTypeErrorBadMessage, socketmode.EventTypeErrorWriteFailed:
		logger.Error().Interface("data", evt.Data).Msg("Socket mode connection problem")

	default:
		ack(client, evt)
		logger.Debug().Msg("Ignoring socket mode delivery")
	}
}

// ack confirms receipt of deliveries that carry an envelope. Slack redelivers anything left
// unacknowledged.
func ack(client SocketClient, evt socketmode.Event) {
	if evt.Request == nil || evt.Request.EnvelopeID == "" {
		return
	}
	client.Ack(*evt.Request)
}
