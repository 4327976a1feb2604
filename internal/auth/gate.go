package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/logger"
)

// PINReader fetches the stored administrator PIN for manual triggers
type PINReader interface {
	GetAdminPIN(ctx context.Context) (string, error)
}

// Gate validates that a distribution trigger is authorized before any
// funds move. Stateless per call and read-only against the store; lockout
// on repeated failures is the caller's responsibility.
type Gate struct {
	cronSecret string
	pins       PINReader
}

// NewGate creates an authorization gate. An empty cronSecret disables the
// automated path entirely (fails closed).
func NewGate(cronSecret string, pins PINReader) *Gate {
	return &Gate{cronSecret: cronSecret, pins: pins}
}

// Verify checks the credential for the given trigger type. Returns nil
// when verified, domain.ErrUnauthorized otherwise. Any missing
// configuration or store failure rejects; it never verifies by default.
func (g *Gate) Verify(ctx context.Context, trigger domain.TriggerType, credential string) error {
	log := logger.FromContext(ctx)

	switch trigger {
	case domain.TriggerAutomated:
		if g.cronSecret == "" {
			log.Warn("Automated trigger rejected: no cron secret configured")
			return domain.ErrUnauthorized
		}
		if !equalConstantTime(credential, g.cronSecret) {
			log.Warn("Automated trigger rejected: bad secret")
			return domain.ErrUnauthorized
		}
		return nil

	case domain.TriggerManual:
		if g.pins == nil {
			log.Warn("Manual trigger rejected: no PIN store configured")
			return domain.ErrUnauthorized
		}
		pin, err := g.pins.GetAdminPIN(ctx)
		if err != nil {
			log.Error("Manual trigger rejected: PIN lookup failed", "error", err)
			return fmt.Errorf("%w: pin lookup failed", domain.ErrUnauthorized)
		}
		if pin == "" || !equalConstantTime(credential, pin) {
			log.Warn("Manual trigger rejected: bad PIN")
			return domain.ErrUnauthorized
		}
		return nil

	default:
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, domain.ErrMsgInvalidTrigger)
	}
}

func equalConstantTime(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
