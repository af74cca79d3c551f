// Package jobs provides scheduled background tasks for the delivery scheduler.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field in the
// spec.
//
// # Available Jobs
//
// ConsistencyAuditJob runs the consistency audit on a cron spec (hourly by
// default) and logs every schedule whose source row mirrors a different
// status. It never repairs anything; the log lines carry a suggested repair
// for operators.
//
// # Usage
//
//	auditJob := jobs.NewConsistencyAuditJob(auditHandler, cfg.Audit.Spec, time.Minute, logger)
//	jobManager := jobs.NewJobManager(auditJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// A run that is still going when the next tick fires makes the tick a no-op.
package jobs
