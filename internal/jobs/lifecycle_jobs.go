package jobs

import (
	"context"
	"time"

	"leasehub-backend/internal/logger"
)

// RemindIncompleteProfiles emails applicants whose application has been
// sitting in submitted for a few days while their profile is still short of
// 100%. Reviewers will not pick an application up until the profile is done.
func (jr *JobRunner) RemindIncompleteProfiles() {
	jr.runWithRecovery("RemindIncompleteProfiles", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().AddDate(0, 0, -jr.config.Retention.ReminderAfterDays)

		apps, err := jr.store.ApplicationRepository.ListSubmittedBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list stale submitted applications", "error", err)
			return
		}

		// One reminder per applicant per run, regardless of application count.
		seen := make(map[int32]bool)
		reminded := 0
		for _, app := range apps {
			if seen[app.ApplicantID] {
				continue
			}
			seen[app.ApplicantID] = true

			report, err := jr.services.Profile.Completeness(ctx, app.ApplicantID)
			if err != nil {
				logger.Error("Failed to score profile", "applicant_id", app.ApplicantID, "error", err)
				continue
			}
			if report.IsComplete {
				continue
			}

			applicant, err := jr.store.ApplicantRepository.GetByID(ctx, app.ApplicantID)
			if err != nil {
				logger.Error("Failed to load applicant", "applicant_id", app.ApplicantID, "error", err)
				continue
			}
			if err := jr.services.Email.SendIncompleteProfileReminder(ctx, applicant.Email, applicant.FirstName, report.Overall); err != nil {
				logger.Error("Failed to send profile reminder", "applicant_id", app.ApplicantID, "error", err)
				continue
			}
			reminded++
		}

		logger.Info("Sent incomplete profile reminders", "count", reminded)
	})
}

// PurgeWithdrawnSnapshots deletes snapshot history for applications that
// were withdrawn longer ago than the retention window. The application rows
// themselves are kept.
func (jr *JobRunner) PurgeWithdrawnSnapshots() {
	jr.runWithRecovery("PurgeWithdrawnSnapshots", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().AddDate(0, 0, -jr.config.Retention.WithdrawnSnapshotDays)

		apps, err := jr.store.ApplicationRepository.ListWithdrawnBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list expired withdrawn applications", "error", err)
			return
		}

		purged := 0
		for _, app := range apps {
			snaps, err := jr.store.SnapshotRepository.ListByApplication(ctx, app.ID)
			if err != nil {
				logger.Error("Failed to list snapshots", "application_id", app.ID, "error", err)
				continue
			}
			for _, snap := range snaps {
				if err := jr.store.SnapshotRepository.Delete(ctx, snap.ID); err != nil {
					logger.Error("Failed to delete snapshot", "snapshot_id", snap.ID, "error", err)
					continue
				}
				purged++
			}
		}

		logger.Info("Purged withdrawn application snapshots", "count", purged)
	})
}
