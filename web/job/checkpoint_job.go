// Package job contains the scheduled maintenance jobs of the contact API.
package job

import (
	"github.com/askardaffa/contact-api/database"
	"github.com/askardaffa/contact-api/logger"
)

// CheckpointJob flushes the SQLite write-ahead log into the main database
// file so it does not grow unbounded between restarts.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

// Run implements cron.Job.
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("checkpoint job err:", err)
	}
}
