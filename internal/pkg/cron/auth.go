package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chronnix/chronnix-backend-go/internal/domain/auth"
)

// AuthJobs purges stale login codes. Codes are single-use and expire in
// minutes, so anything older than a day is dead weight.
type AuthJobs struct {
	codeRepo auth.LoginCodeRepository
}

func NewAuthJobs(codeRepo auth.LoginCodeRepository) *AuthJobs {
	return &AuthJobs{codeRepo: codeRepo}
}

func (j *AuthJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("purge_expired_login_codes", 6*time.Hour, j.PurgeExpiredLoginCodes)
}

func (j *AuthJobs) PurgeExpiredLoginCodes(ctx context.Context) error {
	deleted, err := j.codeRepo.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge expired login codes: %w", err)
	}

	if deleted > 0 {
		slog.Info("Cron: Purged expired login codes", "deleted", deleted)
	}
	return nil
}
