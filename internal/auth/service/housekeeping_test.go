package service

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/aisleworks/doorkey/internal/auth/domain"
	"github.com/aisleworks/doorkey/internal/auth/store/drivers/sqlite"
	"github.com/aisleworks/doorkey/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingClearsExpiredPairs(t *testing.T) {
	st, err := sqlite.NewStore("file:" + filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	ctx := context.Background()
	hash := "stale"
	expired := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, st.Users().CreateUser(ctx, domain.User{
		ID:                    idx.New().String(),
		Email:                 "stale@x.com",
		DisplayName:           "Stale",
		PasswordHash:          "x",
		VerificationTokenHash: &hash,
		VerificationExpiresAt: &expired,
	}))

	hk := NewHousekeepingService(st, slog.Default(), time.Hour)
	hk.Start() // cleanup runs immediately on startup
	hk.Stop()

	got, err := st.Users().GetUserByEmail(ctx, "stale@x.com")
	require.NoError(t, err)
	require.Nil(t, got.VerificationTokenHash)
	require.Nil(t, got.VerificationExpiresAt)
}

func TestHousekeepingDefaultsInterval(t *testing.T) {
	hk := NewHousekeepingService(nil, slog.Default(), 0)
	require.Equal(t, time.Hour, hk.Interval)
}
