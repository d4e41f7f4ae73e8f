// Command slack-event-sender signs a Slack webhook body and posts it to a running
// instance, for exercising the callback endpoints locally.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/DIMO-Network/slack-app-home/internal/signature"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	target := flag.String("url", "http://localhost:3000/slack/events", "endpoint to post to")
	secret := flag.String("secret", os.Getenv("SLACK_SIGNING_SECRET"), "signing secret")
	file := flag.String("file", "-", "body file, - for stdin")
	contentType := flag.String("content-type", "application/json", "request content type")
	flag.Parse()

	body, err := readBody(*file)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to read body")
	}

	ts := strconv.FormatInt(time.Now().Unix(), 10)
	req, err := http.NewRequest(http.MethodPost, *target, bytes.NewReader(body))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create request")
	}
	req.Header.Set("Content-Type", *contentType)
	req.Header.Set(signature.TimestampHeader, ts)
	req.Header.Set(signature.SignatureHeader, signature.NewVerifier(*secret, 0).Sign(body, ts))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to post event")
	}
	defer resp.Body.Close() // nolint:errcheck

	respBody, _ := io.ReadAll(resp.Body)
	logger.Info().Int("status", resp.StatusCode).Msg("Event delivered")
	fmt.Println(string(respBody))
}

func readBody(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
