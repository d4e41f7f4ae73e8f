package config

import "time"

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	Slack SlackSettings `envPrefix:"SLACK_"`
}

// SlackSettings holds the credentials and endpoints used to talk to Slack.
type SlackSettings struct {
	// BotToken is the xoxb- token used for Web API calls.
	BotToken string `env:"BOT_TOKEN"`
	// SigningSecret authenticates inbound webhook requests.
	SigningSecret string `env:"SIGNING_SECRET"`
	// AppToken is the xapp- app-level token. When set, deliveries are also received in socket mode.
	AppToken string `env:"APP_TOKEN"`
	// ChannelID is where test messages are posted.
	ChannelID string `env:"CHANNEL_ID"`
	// APIURL overrides the Web API base URL. Must end with a slash.
	APIURL string `env:"API_URL"`
	// APITimeout bounds every outbound Web API call.
	APITimeout time.Duration `env:"API_TIMEOUT"`
	// SignatureWindow is the accepted clock skew for request timestamps. Zero disables
	// the freshness and replay checks.
	SignatureWindow time.Duration `env:"SIGNATURE_WINDOW" envDefault:"5m"`
}

const (
	defaultPort        = 3000
	defaultMonPort     = 8888
	defaultAPITimeout  = 30 * time.Second
	defaultServiceName = "slack-app-home"
)

// ApplyDefaults fills in zero values that have a sensible default.
func (s *Settings) ApplyDefaults() {
	if s.Port == 0 {
		s.Port = defaultPort
	}
	if s.MonPort == 0 {
		s.MonPort = defaultMonPort
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.ServiceName == "" {
		s.ServiceName = defaultServiceName
	}
	if s.Slack.APITimeout == 0 {
		s.Slack.APITimeout = defaultAPITimeout
	}
}
