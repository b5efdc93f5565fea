package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsLocked(t *testing.T) {
	t.Parallel()

	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name      string
		lockUntil *time.Time
		want      bool
	}{
		{"no lock", nil, false},
		{"future lock", &future, true},
		{"expired lock", &past, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			admin := Admin{LockUntil: tt.lockUntil}
			require.Equal(t, tt.want, admin.IsLocked(now))
		})
	}
}

func TestRegisterLoginFailure_BelowThreshold(t *testing.T) {
	t.Parallel()

	now := time.Now()
	admin := Admin{LoginAttempts: 2}

	admin.RegisterLoginFailure(now)

	require.Equal(t, 3, admin.LoginAttempts)
	require.Nil(t, admin.LockUntil)
}

func TestRegisterLoginFailure_ArmsLockAtThreshold(t *testing.T) {
	t.Parallel()

	now := time.Now()
	admin := Admin{LoginAttempts: MaxLoginAttempts - 1}

	admin.RegisterLoginFailure(now)

	require.Equal(t, MaxLoginAttempts, admin.LoginAttempts)
	require.NotNil(t, admin.LockUntil)
	require.WithinDuration(t, now.Add(LockDuration), *admin.LockUntil, time.Second)
	require.True(t, admin.IsLocked(now))
}

func TestRegisterLoginFailure_DoesNotExtendArmedLock(t *testing.T) {
	t.Parallel()

	now := time.Now()
	armed := now.Add(time.Hour)
	admin := Admin{LoginAttempts: MaxLoginAttempts, LockUntil: &armed}

	admin.RegisterLoginFailure(now)

	require.Equal(t, MaxLoginAttempts+1, admin.LoginAttempts)
	require.Equal(t, armed, *admin.LockUntil)
}

func TestRegisterLoginFailure_ExpiredLockStartsFreshCycle(t *testing.T) {
	t.Parallel()

	now := time.Now()
	expired := now.Add(-time.Minute)
	admin := Admin{LoginAttempts: MaxLoginAttempts, LockUntil: &expired}

	admin.RegisterLoginFailure(now)

	require.Equal(t, 1, admin.LoginAttempts)
	require.Nil(t, admin.LockUntil)
}

func TestRegisterLoginSuccess_ClearsState(t *testing.T) {
	t.Parallel()

	now := time.Now()
	armed := now.Add(time.Hour)
	admin := Admin{LoginAttempts: MaxLoginAttempts, LockUntil: &armed}

	admin.RegisterLoginSuccess(now)

	require.Zero(t, admin.LoginAttempts)
	require.Nil(t, admin.LockUntil)
	require.NotNil(t, admin.LastLogin)
	require.Equal(t, now, *admin.LastLogin)
}
