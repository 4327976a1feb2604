package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/distribution"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/logger"
)

// DistributeRequest represents a request to run a reward distribution
type DistributeRequest struct {
	Timeframe   string `json:"timeframe" validate:"required,timeframe"`
	TriggerType string `json:"trigger_type" validate:"required,triggertype"`
	Credential  string `json:"credential" validate:"required,max=200,excludesall=\x00\n\r\t"`
}

// HandleDistribute handles POST requests to run a reward distribution
func HandleDistribute(svc distribution.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req DistributeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode distribute request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		// Validate request shape before any side effect
		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid distribute request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		domainReq := domain.DistributionRequest{
			Timeframe:   domain.Timeframe(strings.ToLower(req.Timeframe)),
			TriggerType: domain.TriggerType(strings.ToLower(req.TriggerType)),
			Credential:  req.Credential,
		}

		log.Info("Distribution requested",
			"timeframe", domainReq.Timeframe, "trigger", domainReq.TriggerType)

		result, err := svc.Distribute(r.Context(), domainReq)
		if err != nil {
			status, msg := statusForError(err)
			log.Warn("Distribution rejected", "error", err, "status", status)
			respondError(w, status, msg)
			return
		}

		// Once funding was attempted the caller always gets the full
		// per-recipient breakdown, success or not
		respondJSON(w, http.StatusOK, result)
	}
}
