package app

import (
	"context"
	"errors"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/DIMO-Network/slack-app-home/internal/config"
	"github.com/DIMO-Network/slack-app-home/internal/controllers/slackapp"
	"github.com/DIMO-Network/slack-app-home/internal/services/messenger"
	"github.com/DIMO-Network/slack-app-home/internal/signature"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const placeholderText = `There is no web UI for this app. Open the app home in Slack to use it.`

// CreateServers wires the Slack clients and returns the web server. The socket mode
// listener, when an app-level token is configured, is started on group.
func CreateServers(ctx context.Context, group *errgroup.Group, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	if settings.Slack.SigningSecret == "" {
		return nil, errors.New("slack signing secret is required")
	}
	if settings.Slack.BotToken == "" {
		return nil, errors.New("slack bot token is required")
	}

	msgr := messenger.New(&settings.Slack)
	verifier := signature.NewVerifier(settings.Slack.SigningSecret, settings.Slack.SignatureWindow)

	slackController := slackapp.NewController(msgr, verifier, &settings.Slack, logger)

	if settings.Slack.AppToken != "" {
		socketClient := msgr.SocketMode()
		logger.Info().Msg("Starting socket mode listener")
		group.Go(func() error {
			return slackController.RunSocketMode(ctx, socketClient, socketClient.Events)
		})
	}

	if settings.Slack.ChannelID != "" {
		go postStartupMessage(ctx, logger, msgr, settings.Slack.ChannelID)
	}

	return CreateFiberApp(logger, slackController), nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, slackController *slackapp.Controller) *fiber.App {
	logger.Info().Msg("Starting Slack App Home...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(placeholderText)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	logger.Info().Msg("Registering routes...")
	slackController.RegisterRoutes(app)

	return app
}

// postStartupMessage announces the service in the configured channel.
func postStartupMessage(ctx context.Context, logger zerolog.Logger, msgr slackapp.Messenger, channelID string) {
	result, err := msgr.SendMessage(ctx, channelID, slackapp.TestMessageText)
	if err != nil {
		logger.Error().Err(err).Str("channel", channelID).Msg("Failed to post startup message")
		return
	}
	logger.Info().Str("channel", result.Channel).Str("ts", result.Timestamp).Msg("Posted startup message")
}
