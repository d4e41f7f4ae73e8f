package slackapp

import (
	"errors"
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/DIMO-Network/slack-app-home/internal/events"
	"github.com/DIMO-Network/slack-app-home/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

var errUnsignedHomeOpened = errors.New("top-level app_home_opened is not signed")

// HandleEvents handles Events API deliveries on POST /slack/events.
func (s *Controller) HandleEvents(c *fiber.Ctx) error {
	ev, err := events.Parse(c.Body())
	if err != nil {
		// unsigned senders must not be able to tell a parse failure from a rejected signature
		if verr := s.verifier.VerifyRequest(c); verr != nil {
			return verr
		}
		return richerrors.Error{
			ExternalMsg: "Invalid event payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}
	metrics.InboundEvents.WithLabelValues("events", eventLabel(ev)).Inc()

	switch ev := ev.(type) {
	case events.URLVerification:
		return c.JSON(challengeResponse{Challenge: ev.Challenge})
	case events.EventCallback:
		if err := s.verifier.VerifyRequest(c); err != nil {
			return err
		}
		s.handleCallback(c, ev)
		return c.SendStatus(fiber.StatusOK)
	case events.AppHomeOpened:
		return notFound(errUnsignedHomeOpened)
	case events.Unknown:
		return notFound(fmt.Errorf("unrecognized event type %q", ev.Type))
	default:
		return notFound(fmt.Errorf("unhandled event %T", ev))
	}
}

func (s *Controller) handleCallback(c *fiber.Ctx, ev events.EventCallback) {
	logger := zerolog.Ctx(c.UserContext())
	switch inner := ev.Inner.(type) {
	case events.AppHomeOpened:
		logger.Debug().Str("user", inner.User).Str("tab", inner.Tab).Msg("App home opened")
		s.publishHome(c.UserContext(), logger, inner.User, nil)
	default:
		logger.Debug().Str("event_type", inner.Kind()).Str("event_id", ev.EventID).Msg("Ignoring callback event")
	}
}

// eventLabel keeps arbitrary sender-supplied types out of metric labels.
func eventLabel(ev events.Event) string {
	if _, ok := ev.(events.Unknown); ok {
		return "unknown"
	}
	return ev.Kind()
}
