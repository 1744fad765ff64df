package jobs

import (
	"context"
	"log/slog"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/application/usecases/queries"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"

	"github.com/robfig/cron/v3"
)

// DefaultSummarySchedule is used when no schedule is configured.
const DefaultSummarySchedule = "@every 5m"

// StepSummaryHandler counts trackers per step.
type StepSummaryHandler interface {
	Handle(ctx context.Context, query queries.GetStepSummaryQuery) (queries.GetStepSummaryQueryResponse, error)
}

// TrackingSummaryJob periodically logs how many trackers sit in each step.
// It only reads.
type TrackingSummaryJob struct {
	handler  StepSummaryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewTrackingSummaryJob(handler StepSummaryHandler, schedule string, logger *slog.Logger) *TrackingSummaryJob {
	if schedule == "" {
		schedule = DefaultSummarySchedule
	}
	return &TrackingSummaryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "tracking_summary_job"),
	}
}

// Start schedules the job. It fails on a malformed schedule.
func (j *TrackingSummaryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking summary job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running summary to finish.
func (j *TrackingSummaryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Tracking summary job stopped")
}

// Run logs one summary.
func (j *TrackingSummaryJob) Run(ctx context.Context) {
	summary, err := j.handler.Handle(ctx, queries.NewGetStepSummaryQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Tracking summary job failed", "error", err)
		return
	}

	attrs := make([]any, 0, 2*len(summary.Counts)+2)
	for _, step := range tracking.Steps() {
		attrs = append(attrs, step.String(), summary.Counts[step])
	}
	attrs = append(attrs, "active", summary.Active())

	j.logger.InfoContext(ctx, "Tracking summary", attrs...)
}
