package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/distribution"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/logger"
)

// HandleGetHistory handles GET requests for distribution history
func HandleGetHistory(svc distribution.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		timeframe := domain.Timeframe(strings.ToLower(r.URL.Query().Get("timeframe")))
		if timeframe == "" {
			timeframe = domain.TimeframeWeek
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, "Invalid limit parameter")
				return
			}
			limit = v
		}

		records, err := svc.History(r.Context(), timeframe, limit)
		if err != nil {
			status, msg := statusForError(err)
			log.Error("Failed to fetch distribution history", "error", err, "timeframe", timeframe)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: records})
	}
}
