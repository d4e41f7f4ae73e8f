// Package signature authenticates Slack webhook requests using the v0 signing secret scheme.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// TimestampHeader carries the unix timestamp the request was signed at.
	TimestampHeader = "X-Slack-Request-Timestamp"
	// SignatureHeader carries the "v0=<hex digest>" request signature.
	SignatureHeader = "X-Slack-Signature"

	version = "v0"
)

var (
	ErrMissingHeaders    = errors.New("signature or timestamp header missing")
	ErrInvalidTimestamp  = errors.New("timestamp is not a unix time")
	ErrStaleTimestamp    = errors.New("timestamp outside the accepted window")
	ErrSignatureMismatch = errors.New("signature mismatch")
	ErrReplayed          = errors.New("signature already used")
)

// Verifier checks request signatures against a shared signing secret.
// A zero window disables the freshness and replay checks.
type Verifier struct {
	secret []byte
	window time.Duration
	now    func() time.Time
	seen   *cache.Cache
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithClock replaces the wall clock used for the freshness check.
func WithClock(now func() time.Time) Option {
	return func(v *Verifier) {
		v.now = now
	}
}

// NewVerifier creates a Verifier for the given signing secret.
func NewVerifier(secret string, window time.Duration, opts ...Option) *Verifier {
	v := &Verifier{
		secret: []byte(secret),
		window: window,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.window > 0 {
		// a timestamp may lead the clock by up to one window, so its signature stays
		// acceptable for two.
		v.seen = cache.New(2*v.window, v.window)
	}
	return v
}

// Sign returns the signature header value for body signed at timestamp.
func (v *Verifier) Sign(body []byte, timestamp string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(version + ":" + timestamp + ":"))
	mac.Write(body)
	return version + "=" + hex.EncodeToString(mac.Sum(nil))
}

// Verify returns nil when sig is a valid signature of body at timestamp.
func (v *Verifier) Verify(body []byte, timestamp, sig string) error {
	if timestamp == "" || sig == "" {
		return ErrMissingHeaders
	}
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimestamp, timestamp)
	}
	if v.window > 0 {
		skew := v.now().Sub(time.Unix(ts, 0))
		if skew > v.window || skew < -v.window {
			return fmt.Errorf("%w: skew %s", ErrStaleTimestamp, skew)
		}
	}

	if !hmac.Equal([]byte(v.Sign(body, timestamp)), []byte(sig)) {
		return ErrSignatureMismatch
	}

	if v.seen != nil {
		if err := v.seen.Add(sig, struct{}{}, cache.DefaultExpiration); err != nil {
			return ErrReplayed
		}
	}
	return nil
}

// Reason returns a short label describing why verification failed.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrMissingHeaders):
		return "missing_headers"
	case errors.Is(err, ErrInvalidTimestamp):
		return "invalid_timestamp"
	case errors.Is(err, ErrStaleTimestamp):
		return "stale_timestamp"
	case errors.Is(err, ErrReplayed):
		return "replayed"
	case errors.Is(err, ErrSignatureMismatch):
		return "mismatch"
	default:
		return "unknown"
	}
}
