package models

import "time"

type AdminRole string

const (
	AdminRoleAdmin     AdminRole = "admin"
	AdminRoleModerator AdminRole = "moderator"
)

func (r AdminRole) Valid() bool {
	return r == AdminRoleAdmin || r == AdminRoleModerator
}

// Lockout policy: after MaxLoginAttempts consecutive failures the account is
// locked for LockDuration. The lock is enforced through LockUntil, not the
// counter.
const (
	MaxLoginAttempts = 5
	LockDuration     = 2 * time.Hour
)

type Admin struct {
	ID            string
	Username      string
	Email         string
	PasswordHash  []byte
	Role          AdminRole
	IsActive      bool
	LastLogin     *time.Time
	LoginAttempts int
	LockUntil     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsLocked reports whether the account is under an active lockout at the
// given instant.
func (a Admin) IsLocked(now time.Time) bool {
	return a.LockUntil != nil && a.LockUntil.After(now)
}

// RegisterLoginFailure advances the lockout state after a failed password
// check. An expired lock starts a fresh cycle; once a lock is armed it is not
// extended by further failures until it runs out.
func (a *Admin) RegisterLoginFailure(now time.Time) {
	if a.LockUntil != nil && !a.LockUntil.After(now) {
		a.LoginAttempts = 1
		a.LockUntil = nil
		return
	}

	a.LoginAttempts++
	if a.LoginAttempts >= MaxLoginAttempts && !a.IsLocked(now) {
		until := now.Add(LockDuration)
		a.LockUntil = &until
	}
}

// RegisterLoginSuccess clears the lockout state unconditionally and stamps the
// last successful login.
func (a *Admin) RegisterLoginSuccess(now time.Time) {
	a.LoginAttempts = 0
	a.LockUntil = nil
	last := now
	a.LastLogin = &last
}
