package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops all background jobs together.
type JobManager struct {
	trackingSummaryJob *TrackingSummaryJob
}

func NewJobManager(summaryHandler StepSummaryHandler, summarySchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		trackingSummaryJob: NewTrackingSummaryJob(summaryHandler, summarySchedule, logger),
	}
}

func (jm *JobManager) StartAll() error {
	if err := jm.trackingSummaryJob.Start(); err != nil {
		return fmt.Errorf("failed to start tracking summary job: %w", err)
	}
	return nil
}

func (jm *JobManager) StopAll() {
	jm.trackingSummaryJob.Stop()
}
