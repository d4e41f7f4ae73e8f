// Package events classifies Events API request bodies into a closed set of variants.
package events

import (
	"encoding/json"
	"fmt"

	"github.com/slack-go/slack/slackevents"
)

// Event is an inbound Events API payload. The implementations in this package are the
// only ones: URLVerification, EventCallback, AppHomeOpened and Unknown.
type Event interface {
	// Kind is the declared top-level type.
	Kind() string
	isEvent()
}

// InnerEvent is the event wrapped by an EventCallback: AppHomeOpened or UnknownInner.
type InnerEvent interface {
	Kind() string
	isInnerEvent()
}

// URLVerification is the handshake Slack sends when the request URL is configured.
type URLVerification struct {
	Challenge string
}

// EventCallback wraps a workspace event. It must be signature checked before acting on
// Inner.
type EventCallback struct {
	TeamID   string
	APIAppID string
	EventID  string
	Inner    InnerEvent
}

// AppHomeOpened is sent when a user opens the app home. It appears nested in an
// EventCallback and, from misbehaving senders, as a top-level type.
type AppHomeOpened struct {
	User    string
	Channel string
	Tab     string
}

// Unknown is any top-level type this service does not handle.
type Unknown struct {
	Type string
}

// UnknownInner is any callback event type this service does not handle.
type UnknownInner struct {
	Type string
}

func (URLVerification) Kind() string { return string(slackevents.URLVerification) }
func (EventCallback) Kind() string   { return string(slackevents.CallbackEvent) }
func (AppHomeOpened) Kind() string   { return string(slackevents.AppHomeOpened) }
func (u Unknown) Kind() string       { return u.Type }
func (u UnknownInner) Kind() string  { return u.Type }

func (URLVerification) isEvent() {}
func (EventCallback) isEvent()   {}
func (AppHomeOpened) isEvent()   {}
func (Unknown) isEvent()         {}

func (AppHomeOpened) isInnerEvent() {}
func (UnknownInner) isInnerEvent()  {}

type envelope struct {
	Type      string          `json:"type"`
	Challenge string          `json:"challenge"`
	TeamID    string          `json:"team_id"`
	APIAppID  string          `json:"api_app_id"`
	EventID   string          `json:"event_id"`
	User      string          `json:"user"`
	Event     json.RawMessage `json:"event"`
}

type innerHeader struct {
	Type string `json:"type"`
}

// Parse decodes an Events API request body.
func Parse(body []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode event envelope: %w", err)
	}

	switch env.Type {
	case string(slackevents.URLVerification):
		return URLVerification{Challenge: env.Challenge}, nil
	case string(slackevents.CallbackEvent):
		inner, err := parseInner(env.Event)
		if err != nil {
			return nil, err
		}
		return EventCallback{
			TeamID:   env.TeamID,
			APIAppID: env.APIAppID,
			EventID:  env.EventID,
			Inner:    inner,
		}, nil
	case string(slackevents.AppHomeOpened):
		home := AppHomeOpened{User: env.User}
		if len(env.Event) > 0 {
			if inner, err := decodeAppHomeOpened(env.Event); err == nil && inner.User != "" {
				home = inner
			}
		}
		return home, nil
	default:
		return Unknown{Type: env.Type}, nil
	}
}

func parseInner(raw json.RawMessage) (InnerEvent, error) {
	if len(raw) == 0 {
		return UnknownInner{}, nil
	}
	var header innerHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return nil, fmt.Errorf("failed to decode inner event: %w", err)
	}
	if header.Type != string(slackevents.AppHomeOpened) {
		return UnknownInner{Type: header.Type}, nil
	}
	return decodeAppHomeOpened(raw)
}

func decodeAppHomeOpened(raw json.RawMessage) (AppHomeOpened, error) {
	var ev slackevents.AppHomeOpenedEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return AppHomeOpened{}, fmt.Errorf("failed to decode app_home_opened event: %w", err)
	}
	return AppHomeOpened{User: ev.User, Channel: ev.Channel, Tab: ev.Tab}, nil
}
