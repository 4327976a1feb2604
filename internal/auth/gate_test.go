package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/auth"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
)

type stubPINReader struct {
	pin string
	err error
}

func (s *stubPINReader) GetAdminPIN(ctx context.Context) (string, error) {
	return s.pin, s.err
}

func TestGate_AutomatedTrigger(t *testing.T) {
	tests := []struct {
		name       string
		cronSecret string
		credential string
		wantErr    error
	}{
		{
			name:       "correct secret",
			cronSecret: "top-secret",
			credential: "top-secret",
			wantErr:    nil,
		},
		{
			name:       "wrong secret",
			cronSecret: "top-secret",
			credential: "guess",
			wantErr:    domain.ErrUnauthorized,
		},
		{
			name:       "no secret configured fails closed",
			cronSecret: "",
			credential: "",
			wantErr:    domain.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := auth.NewGate(tt.cronSecret, &stubPINReader{pin: "1234"})
			err := gate.Verify(context.Background(), domain.TriggerAutomated, tt.credential)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestGate_ManualTrigger(t *testing.T) {
	tests := []struct {
		name       string
		pins       *stubPINReader
		credential string
		wantErr    error
	}{
		{
			name:       "correct pin",
			pins:       &stubPINReader{pin: "1234"},
			credential: "1234",
			wantErr:    nil,
		},
		{
			name:       "wrong pin",
			pins:       &stubPINReader{pin: "1234"},
			credential: "4321",
			wantErr:    domain.ErrUnauthorized,
		},
		{
			name:       "empty stored pin rejects",
			pins:       &stubPINReader{pin: ""},
			credential: "",
			wantErr:    domain.ErrUnauthorized,
		},
		{
			name:       "store failure rejects",
			pins:       &stubPINReader{err: errors.New("db down")},
			credential: "1234",
			wantErr:    domain.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := auth.NewGate("cron-secret", tt.pins)
			err := gate.Verify(context.Background(), domain.TriggerManual, tt.credential)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestGate_ManualTriggerWithoutStore(t *testing.T) {
	gate := auth.NewGate("cron-secret", nil)
	err := gate.Verify(context.Background(), domain.TriggerManual, "1234")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGate_UnknownTrigger(t *testing.T) {
	gate := auth.NewGate("cron-secret", &stubPINReader{pin: "1234"})
	err := gate.Verify(context.Background(), domain.TriggerType("webhook"), "1234")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
