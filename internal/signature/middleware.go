package signature

import (
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/DIMO-Network/slack-app-home/internal/metrics"
	"github.com/gofiber/fiber/v2"
)

// Middleware rejects requests whose signature does not verify with a 404.
func (v *Verifier) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := v.VerifyRequest(c); err != nil {
			return err
		}
		return c.Next()
	}
}

// VerifyRequest verifies the raw body and Slack signature headers of c. The returned
// error is a richerrors.Error carrying a 404 so callers can return it as is.
func (v *Verifier) VerifyRequest(c *fiber.Ctx) error {
	err := v.Verify(c.Body(), c.Get(TimestampHeader), c.Get(SignatureHeader))
	if err == nil {
		return nil
	}
	metrics.SignatureFailures.WithLabelValues(Reason(err)).Inc()
	return richerrors.Error{
		ExternalMsg: "Not Found",
		Err:         err,
		Code:        fiber.StatusNotFound,
	}
}
