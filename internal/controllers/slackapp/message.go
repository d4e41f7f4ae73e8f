package slackapp

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// HandlePostMessage posts the test message to the configured channel on GET /post-message.
func (s *Controller) HandlePostMessage(c *fiber.Ctx) error {
	result, err := s.messenger.SendMessage(c.UserContext(), s.channelID, TestMessageText)
	if err != nil {
		zerolog.Ctx(c.UserContext()).Error().Err(err).Str("channel", s.channelID).Msg("Failed to post test message")
		return c.JSON(PostMessageResponse{OK: false, Error: "failed to post message"})
	}
	return c.JSON(PostMessageResponse{
		OK:        true,
		Channel:   result.Channel,
		Timestamp: result.Timestamp,
	})
}
