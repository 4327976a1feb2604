package handler

import (
	"net/http"
	"strconv"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/distribution"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/logger"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/rewards"
)

// HandleGetSchedule handles GET requests for a payout schedule preview.
// With a pool query parameter the schedule is computed for that pool;
// otherwise the currently configured pool size is used.
func HandleGetSchedule(svc distribution.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if raw := r.URL.Query().Get("pool"); raw != "" {
			pool, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || pool < 0 {
				respondError(w, http.StatusBadRequest, "Invalid pool parameter")
				return
			}
			respondJSON(w, http.StatusOK, DataResponse{Data: rewards.ComputeSchedule(pool)})
			return
		}

		schedule, err := svc.SchedulePreview(r.Context())
		if err != nil {
			status, msg := statusForError(err)
			log.Error("Failed to compute schedule preview", "error", err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: schedule})
	}
}
