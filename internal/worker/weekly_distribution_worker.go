package worker

import (
	"context"
	"sync"
	"time"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/distribution"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/logger"
)

// WeeklyDistributionWorker fires the automated weekly reward distribution
// at Monday 00:00 UTC, the moment the weekly leaderboard closes.
type WeeklyDistributionWorker struct {
	distributionService distribution.Service
	cronSecret          string
	timer               *time.Timer
	shutdown            chan struct{}
	wg                  sync.WaitGroup
	mu                  sync.Mutex
}

func NewWeeklyDistributionWorker(distributionService distribution.Service, cronSecret string) *WeeklyDistributionWorker {
	return &WeeklyDistributionWorker{
		distributionService: distributionService,
		cronSecret:          cronSecret,
		shutdown:            make(chan struct{}),
	}
}

func (w *WeeklyDistributionWorker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.scheduleNext()
	}()
}

func (w *WeeklyDistributionWorker) scheduleNext() {
	duration := timeUntilNextWeeklyClose()

	w.mu.Lock()
	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}
		w.wg.Add(1)
		go w.executeDistribution()
	})
	w.mu.Unlock()
}

func (w *WeeklyDistributionWorker) executeDistribution() {
	defer w.wg.Done()

	// A timer can fire while Shutdown is stopping it
	select {
	case <-w.shutdown:
		return
	default:
	}

	ctx := context.Background()
	log := logger.FromContext(ctx)

	log.Info(LogMsgWeeklyDistributionStarting)

	result, err := w.distributionService.Distribute(ctx, domain.DistributionRequest{
		Timeframe:   domain.TimeframeWeek,
		TriggerType: domain.TriggerAutomated,
		Credential:  w.cronSecret,
	})
	if err != nil {
		log.Error(LogMsgWeeklyDistributionFailed, "error", err)
	} else {
		log.Info(LogMsgWeeklyDistributionCompleted,
			"success", result.Success,
			"recipient_count", result.RecipientCount,
			"success_count", result.SuccessCount,
			"failure_count", result.FailureCount)
	}

	// Schedule next distribution unless shutdown started mid-run
	select {
	case <-w.shutdown:
		return
	default:
	}
	w.scheduleNext()
}

// timeUntilNextWeeklyClose calculates time until next Monday 00:00 UTC
func timeUntilNextWeeklyClose() time.Duration {
	now := time.Now().UTC()

	// Monday is day 1 in Go's time.Weekday
	daysUntilMonday := (8 - int(now.Weekday())) % 7
	if daysUntilMonday == 0 {
		// It's already Monday, go to next Monday
		daysUntilMonday = 7
	}

	nextClose := time.Date(
		now.Year(), now.Month(), now.Day(),
		0, 0, 0, 0, time.UTC,
	).AddDate(0, 0, daysUntilMonday)

	duration := nextClose.Sub(now)

	log := logger.FromContext(context.Background())
	log.Info(LogMsgWeeklyDistributionScheduled,
		"next_distribution", nextClose.Format(time.RFC3339),
		"duration", duration.String())

	return duration
}

func (w *WeeklyDistributionWorker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
