package slackapp

// TestMessageText is the text posted by the post-message endpoint.
const TestMessageText = "Hello World"

type challengeResponse struct {
	Challenge string `json:"challenge"`
}

// PostMessageResponse is the result of a test message post.
type PostMessageResponse struct {
	// OK reports whether Slack accepted the message.
	OK bool `json:"ok"`
	// Channel is the channel the message landed in.
	Channel string `json:"channel,omitempty"`
	// Timestamp is the message ts.
	Timestamp string `json:"ts,omitempty"`
	// Error is set when OK is false.
	Error string `json:"error,omitempty"`
}
