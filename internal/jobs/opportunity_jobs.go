package jobs

import (
	"context"

	"volunteerhub-backend/internal/logger"
)

// StartDueOpportunities moves published opportunities whose start date has
// arrived into IN_PROGRESS.
func (jr *JobRunner) StartDueOpportunities() {
	jr.runWithRecovery("StartDueOpportunities", func() {
		ctx := context.Background()

		started, err := jr.store.OpportunityRepository.StartDue(ctx)
		if err != nil {
			logger.Error("Failed to start due opportunities", "error", err)
			return
		}

		logger.Info("Started due opportunities", "count", len(started))
		for _, opp := range started {
			logger.Debug("Started opportunity",
				"opportunity_id", opp.ID,
				"charity_id", opp.CharityID,
				"start_date", opp.StartDate.Format("2006-01-02"))
		}
	})
}

// CompleteExpiredOpportunities completes in-progress opportunities whose end
// date has passed.
func (jr *JobRunner) CompleteExpiredOpportunities() {
	jr.runWithRecovery("CompleteExpiredOpportunities", func() {
		ctx := context.Background()

		completed, err := jr.store.OpportunityRepository.CompleteExpired(ctx)
		if err != nil {
			logger.Error("Failed to complete expired opportunities", "error", err)
			return
		}

		logger.Info("Completed expired opportunities", "count", len(completed))
		for _, opp := range completed {
			logger.Debug("Completed opportunity",
				"opportunity_id", opp.ID,
				"charity_id", opp.CharityID,
				"end_date", opp.EndDate.Format("2006-01-02"))
		}
	})
}
