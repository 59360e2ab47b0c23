// Package session models an authenticated session as a plain value owned by
// the caller. Expiry and idle checks are pure predicates over (now, session);
// there is no package-level state.
package session

import "time"

// DefaultTimeout bounds both the session lifetime and the allowed idle gap.
const DefaultTimeout = 30 * time.Minute

type Session struct {
	Token        string
	ExpiresAt    time.Time
	LastActivity time.Time
}

// New creates a session starting at now with the given timeout.
func New(token string, now time.Time, timeout time.Duration) Session {
	return Session{
		Token:        token,
		ExpiresAt:    now.Add(timeout),
		LastActivity: now,
	}
}

// Expired reports whether the session's absolute lifetime has passed.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Idle reports whether more than timeout has passed since the last activity.
func (s Session) Idle(now time.Time, timeout time.Duration) bool {
	return now.Sub(s.LastActivity) > timeout
}

// Active reports whether the session is neither expired nor idle.
func (s Session) Active(now time.Time, timeout time.Duration) bool {
	return !s.Expired(now) && !s.Idle(now, timeout)
}

// Touch returns a copy with the activity timestamp moved to now.
func (s Session) Touch(now time.Time) Session {
	s.LastActivity = now
	return s
}
