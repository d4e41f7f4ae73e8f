package messenger

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/DIMO-Network/slack-app-home/internal/config"
	"github.com/DIMO-Network/slack-app-home/internal/metrics"
	"github.com/DIMO-Network/slack-app-home/internal/views"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

const (
	// RemoteAPIFailureCode is the code returned when a Slack Web API call failed
	RemoteAPIFailureCode = -1

	methodViewsPublish    = "views.publish"
	methodViewsOpen       = "views.open"
	methodChatPostMessage = "chat.postMessage"
)

// PostResult identifies a message posted with SendMessage.
type PostResult struct {
	Channel   string `json:"channel"`
	Timestamp string `json:"ts"`
}

// Messenger sends views and messages to the Slack Web API.
type Messenger struct {
	client *slack.Client
}

// New creates a Messenger authenticated with the bot token from settings.
func New(settings *config.SlackSettings) *Messenger {
	opts := []slack.Option{
		slack.OptionHTTPClient(&http.Client{Timeout: settings.APITimeout}),
	}
	if settings.APIURL != "" {
		opts = append(opts, slack.OptionAPIURL(settings.APIURL))
	}
	if settings.AppToken != "" {
		opts = append(opts, slack.OptionAppLevelToken(settings.AppToken))
	}
	return &Messenger{
		client: slack.New(settings.BotToken, opts...),
	}
}

// SocketMode returns a socket mode client sharing this Messenger's Web API client. It needs
// the app-level token from settings.
func (m *Messenger) SocketMode() *socketmode.Client {
	return socketmode.New(m.client)
}

// PublishHome publishes doc as the home tab of userID.
func (m *Messenger) PublishHome(ctx context.Context, userID string, doc views.Document) error {
	_, err := m.client.PublishViewContext(ctx, userID, doc.HomeTabRequest(), "")
	metrics.OutboundCalls.WithLabelValues(methodViewsPublish, metrics.OutboundStatus(err)).Inc()
	if err != nil {
		return remoteFailure(methodViewsPublish, err)
	}
	return nil
}

// OpenModal opens doc as a modal for the interaction identified by triggerID.
func (m *Messenger) OpenModal(ctx context.Context, triggerID string, doc views.Document) error {
	_, err := m.client.OpenViewContext(ctx, triggerID, doc.ModalRequest())
	metrics.OutboundCalls.WithLabelValues(methodViewsOpen, metrics.OutboundStatus(err)).Inc()
	if err != nil {
		return remoteFailure(methodViewsOpen, err)
	}
	return nil
}

// SendMessage posts a plain text message to channelID.
func (m *Messenger) SendMessage(ctx context.Context, channelID, text string) (PostResult, error) {
	channel, ts, err := m.client.PostMessageContext(ctx, channelID, slack.MsgOptionText(text, false))
	metrics.OutboundCalls.WithLabelValues(methodChatPostMessage, metrics.OutboundStatus(err)).Inc()
	if err != nil {
		return PostResult{}, remoteFailure(methodChatPostMessage, err)
	}
	return PostResult{Channel: channel, Timestamp: ts}, nil
}

func remoteFailure(method string, err error) error {
	return richerrors.Error{
		Code: RemoteAPIFailureCode,
		Err:  fmt.Errorf("%s failed: %w", method, err),
	}
}
