package session

import (
	"testing"
	"time"
)

var start = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func TestActiveWithinTimeout(t *testing.T) {
	s := New("tok", start, DefaultTimeout)
	if !s.Active(start.Add(5*time.Minute), DefaultTimeout) {
		t.Fatalf("session should be active 5 minutes in")
	}
}

func TestExpiredAfterLifetime(t *testing.T) {
	s := New("tok", start, DefaultTimeout)
	now := start.Add(31 * time.Minute)
	if !s.Expired(now) {
		t.Fatalf("session should be expired after 31 minutes")
	}
	if s.Active(now, DefaultTimeout) {
		t.Fatalf("expired session must not be active")
	}
}

func TestIdleTimeout(t *testing.T) {
	s := New("tok", start, 2*time.Hour)
	now := start.Add(31 * time.Minute)
	if !s.Idle(now, DefaultTimeout) {
		t.Fatalf("session should be idle after 31 minutes without activity")
	}
	if s.Active(now, DefaultTimeout) {
		t.Fatalf("idle session must not be active")
	}
}

func TestTouchKeepsSessionAlive(t *testing.T) {
	s := New("tok", start, 2*time.Hour)
	s = s.Touch(start.Add(25 * time.Minute))
	now := start.Add(50 * time.Minute)
	if s.Idle(now, DefaultTimeout) {
		t.Fatalf("touched session should not be idle")
	}
	if !s.Active(now, DefaultTimeout) {
		t.Fatalf("touched session within lifetime should be active")
	}
}

func TestTouchReturnsCopy(t *testing.T) {
	original := New("tok", start, DefaultTimeout)
	_ = original.Touch(start.Add(10 * time.Minute))
	if !original.LastActivity.Equal(start) {
		t.Fatalf("Touch must not mutate the receiver")
	}
}
