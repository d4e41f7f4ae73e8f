package slackapp

import (
	"context"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/DIMO-Network/slack-app-home/internal/config"
	"github.com/DIMO-Network/slack-app-home/internal/services/messenger"
	"github.com/DIMO-Network/slack-app-home/internal/signature"
	"github.com/DIMO-Network/slack-app-home/internal/views"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Messenger sends rendered views and messages to Slack.
type Messenger interface {
	PublishHome(ctx context.Context, userID string, doc views.Document) error
	OpenModal(ctx context.Context, triggerID string, doc views.Document) error
	SendMessage(ctx context.Context, channelID, text string) (messenger.PostResult, error)
}

// Controller dispatches Slack webhooks to view renders and outbound calls.
type Controller struct {
	messenger Messenger
	verifier  *signature.Verifier
	channelID string
	logger    zerolog.Logger

	now func() time.Time
	// async runs work that must happen after the response has been sent.
	async func(func())
}

// NewController creates a new Controller.
func NewController(msgr Messenger, verifier *signature.Verifier, settings *config.SlackSettings, logger zerolog.Logger) *Controller {
	return &Controller{
		messenger: msgr,
		verifier:  verifier,
		channelID: settings.ChannelID,
		logger:    logger,
		now:       time.Now,
		async:     func(f func()) { go f() },
	}
}

// publishHome renders and publishes the home tab. Failures are logged and dropped.
func (s *Controller) publishHome(ctx context.Context, logger *zerolog.Logger, userID string, sub *views.Submission) {
	if err := s.messenger.PublishHome(ctx, userID, views.Home(userID, sub)); err != nil {
		logger.Error().Err(err).Str("user", userID).Msg("Failed to publish home view")
	}
}

// openNoteModal opens the note modal. Failures are logged and dropped.
func (s *Controller) openNoteModal(ctx context.Context, logger *zerolog.Logger, triggerID string) {
	if err := s.messenger.OpenModal(ctx, triggerID, views.NoteModal()); err != nil {
		logger.Error().Err(err).Str("trigger_id", triggerID).Msg("Failed to open note modal")
	}
}

func notFound(err error) error {
	return richerrors.Error{
		ExternalMsg: "Not Found",
		Err:         err,
		Code:        fiber.StatusNotFound,
	}
}

// RegisterRoutes mounts the Slack callback endpoints on router.
func (s *Controller) RegisterRoutes(router fiber.Router) {
	router.Post("/slack/events", s.HandleEvents)
	router.Post("/slack/actions", s.verifier.Middleware(), s.HandleActions)
	router.Get("/post-message", s.HandlePostMessage)
}
