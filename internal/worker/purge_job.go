package worker

import (
	"context"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/distribution"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/logger"
)

// PurgeJob removes distribution records past their retention window.
// It is scheduled at a fixed interval through the worker pool.
type PurgeJob struct {
	distributionService distribution.Service
}

func NewPurgeJob(distributionService distribution.Service) *PurgeJob {
	return &PurgeJob{distributionService: distributionService}
}

func (j *PurgeJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurgeStarting)

	purged, err := j.distributionService.PurgeExpired(ctx)
	if err != nil {
		log.Error(LogMsgPurgeFailed, "error", err)
		return err
	}

	log.Info(LogMsgPurgeCompleted, "purged", purged)
	return nil
}
