package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/leaderboard"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/logger"
)

const defaultLeaderboardLimit = 10

// HandleGetLeaderboard handles GET requests for the ranked leaderboard
func HandleGetLeaderboard(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		timeframe := domain.Timeframe(strings.ToLower(r.URL.Query().Get("timeframe")))
		if timeframe == "" {
			timeframe = domain.TimeframeWeek
		}

		limit := defaultLeaderboardLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil || v <= 0 {
				respondError(w, http.StatusBadRequest, "Invalid limit parameter")
				return
			}
			limit = v
		}

		participants, err := svc.GetRankedParticipants(r.Context(), timeframe, limit)
		if err != nil {
			status, msg := statusForError(err)
			log.Error("Failed to fetch leaderboard", "error", err, "timeframe", timeframe)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: participants})
	}
}
