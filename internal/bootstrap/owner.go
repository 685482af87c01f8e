// Package bootstrap provisions the owner account on startup.
package bootstrap

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"fittrack/internal/auth"
	"fittrack/internal/logger"
	"fittrack/internal/membership"
	"fittrack/internal/user"
)

const ownerGrant = 100 * 365 * 24 * time.Hour

// EnsureOwner creates the configured owner account with an elite lifetime
// membership if it does not exist yet. The generated password is logged
// exactly once, on the run that creates the account. Safe to call on every
// startup.
func EnsureOwner(ctx context.Context, users user.Repository, memberships membership.Repository, email, name string) error {
	if email == "" {
		logger.Debug("Owner bootstrap skipped: OWNER_EMAIL not configured")
		return nil
	}

	exists, err := users.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		logger.Debug("Owner account already provisioned", "email", email)
		return nil
	}

	password := newOwnerPassword()
	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	owner, err := users.Create(ctx, name, email, passwordHash, "admin")
	if err != nil {
		return err
	}

	endDate := time.Now().Add(ownerGrant)
	if _, err := memberships.SupersedeMembership(ctx, owner.ID, membership.TierElite, endDate, nil); err != nil {
		return err
	}

	logger.Info("Owner account created", "email", email, "initial_password", password)
	return nil
}

func newOwnerPassword() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:20]
}
