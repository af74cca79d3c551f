package jobs

import (
	"context"
	"time"

	"deliveryscheduler/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DefaultAuditSpec runs the audit at the top of every hour.
const DefaultAuditSpec = "0 0 * * * *"

// Auditor is the part of the consistency audit query handler the job needs.
type Auditor interface {
	Handle(ctx context.Context, query queries.RunConsistencyAuditQuery) ([]queries.Mismatch, error)
}

// ConsistencyAuditJob periodically compares schedules with the delivery
// fields mirrored onto source rows and reports every drift it finds.
type ConsistencyAuditJob struct {
	auditor Auditor
	spec    string
	timeout time.Duration
	cron    *cron.Cron
	logger  zerolog.Logger
}

// NewConsistencyAuditJob creates the job. spec is a six-field cron expression
// (seconds first); an empty spec means DefaultAuditSpec.
func NewConsistencyAuditJob(auditor Auditor, spec string, timeout time.Duration, logger zerolog.Logger) *ConsistencyAuditJob {
	if spec == "" {
		spec = DefaultAuditSpec
	}
	return &ConsistencyAuditJob{
		auditor: auditor,
		spec:    spec,
		timeout: timeout,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.With().Str("component", "consistency_audit_job").Logger(),
	}
}

// Start schedules the audit. It returns an error for an invalid cron spec.
func (j *ConsistencyAuditJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Str("spec", j.spec).Msg("consistency audit job started")
	return nil
}

// Stop waits for a running audit to finish.
func (j *ConsistencyAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("consistency audit job stopped")
}

// RunOnce audits all source kinds and returns the number of mismatches found.
func (j *ConsistencyAuditJob) RunOnce(ctx context.Context) (int, error) {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	query, err := queries.NewRunConsistencyAuditQuery()
	if err != nil {
		return 0, err
	}

	mismatches, err := j.auditor.Handle(ctx, query)
	if err != nil {
		return 0, err
	}

	for _, m := range mismatches {
		j.logger.Warn().
			Err(m.Violation()).
			Str("schedule_id", m.ScheduleID.String()).
			Str("source", m.Source.String()).
			Str("public_reference", m.PublicReference).
			Str("schedule_status", m.ScheduleStatus.String()).
			Str("mirror_status", m.MirrorStatus).
			Bool("source_missing", m.SourceMissing).
			Str("repair", m.SuggestedRepair).
			Msg("delivery status drift")
	}

	return len(mismatches), nil
}

func (j *ConsistencyAuditJob) run() {
	started := time.Now()

	n, err := j.RunOnce(context.Background())
	if err != nil {
		j.logger.Error().Err(err).Msg("consistency audit failed")
		return
	}

	j.logger.Info().
		Int("mismatches", n).
		Dur("took", time.Since(started)).
		Msg("consistency audit finished")
}
