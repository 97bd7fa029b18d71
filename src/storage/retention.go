package storage

import (
	"fmt"

	"market-charts/src/interfaces"
	"market-charts/src/logger"

	"github.com/robfig/cron/v3"
)

// Retention prunes the journal on a cron schedule.
type Retention struct {
	Cron          *cron.Cron
	Journal       interfaces.IJournal
	RetentionDays int
	Logger        *logger.Logger
}

// -----------------------------------------------------------------------------

// NewRetention registers the cleanup job. spec accepts standard five field
// expressions and descriptors such as @daily.
func NewRetention(journal interfaces.IJournal, spec string, retentionDays int, log *logger.Logger) (*Retention, error) {
	r := &Retention{
		Cron:          cron.New(),
		Journal:       journal,
		RetentionDays: retentionDays,
		Logger:        log,
	}
	if _, err := r.Cron.AddFunc(spec, r.RunNow); err != nil {
		return nil, fmt.Errorf("register journal cleanup %q: %w", spec, err)
	}
	return r, nil
}

// -----------------------------------------------------------------------------

func (r *Retention) Start() {
	r.Cron.Start()
	if r.Logger != nil {
		r.Logger.Info("Journal retention started (%d days)", r.RetentionDays)
	}
}

// Stop waits for a running cleanup to finish.
func (r *Retention) Stop() {
	<-r.Cron.Stop().Done()
}

// -----------------------------------------------------------------------------

func (r *Retention) RunNow() {
	n, err := r.Journal.CleanupOldData(r.RetentionDays)
	if r.Logger == nil {
		return
	}
	if err != nil {
		r.Logger.Error("Journal cleanup failed: %v", err)
		return
	}
	r.Logger.Debug("Journal cleanup removed %d entries", n)
}
