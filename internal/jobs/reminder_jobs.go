package jobs

import (
	"context"
	"fmt"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/logger"
)

// SendOpportunityReminders notifies and emails every confirmed volunteer on
// opportunities starting within the configured window.
func (jr *JobRunner) SendOpportunityReminders() {
	jr.runWithRecovery("SendOpportunityReminders", func() {
		ctx := context.Background()
		window := jr.config.Scheduler.ReminderWindowHours

		upcoming, err := jr.store.OpportunityRepository.ListStartingWithin(ctx, window)
		if err != nil {
			logger.Error("Failed to list upcoming opportunities", "error", err)
			return
		}

		sent := 0
		for _, opp := range upcoming {
			apps, err := jr.store.ApplicationRepository.ListConfirmedByOpportunity(ctx, opp.ID)
			if err != nil {
				logger.Error("Failed to list confirmed applications", "opportunity_id", opp.ID, "error", err)
				continue
			}

			for _, app := range apps {
				vol, err := jr.store.VolunteerRepository.GetByID(ctx, app.VolunteerID)
				if err != nil {
					logger.Error("Failed to load volunteer for reminder", "volunteer_id", app.VolunteerID, "error", err)
					continue
				}

				_ = jr.store.NotificationRepository.Create(ctx, &domain.Notification{
					UserID:   vol.UserID,
					Type:     domain.NotifyOpportunityReminder,
					Title:    "Upcoming Opportunity",
					Message:  fmt.Sprintf("%s starts on %s", opp.Title, opp.StartDate.Format("2006-01-02")),
					Priority: domain.PriorityNormal,
					Attributes: map[string]string{
						"opportunity_id": fmt.Sprintf("%d", opp.ID),
					},
				})

				user, err := jr.store.UserRepository.GetByID(ctx, vol.UserID)
				if err != nil {
					continue
				}
				if err := jr.services.Email.SendOpportunityReminderEmail(ctx, user.Email, user.Name, opp.Title, opp.StartDate.Format("January 2, 2006")); err != nil {
					logger.Error("Failed to send reminder email", "opportunity_id", opp.ID, "user_id", user.ID, "error", err)
					continue
				}
				sent++
			}
		}

		logger.Info("Opportunity reminders sent", "opportunities", len(upcoming), "reminders", sent)
	})
}
