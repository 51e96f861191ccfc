package email

import "testing"

func TestNewSMTPUsernameDefaultsToFrom(t *testing.T) {
	s := NewSMTP("mail.example.com", 587, "me@example.com", "", "secret")
	if s.Username != "me@example.com" {
		t.Errorf("Username = %q, want the from address", s.Username)
	}

	s = NewSMTP("mail.example.com", 587, "me@example.com", "bot@example.com", "secret")
	if s.Username != "bot@example.com" {
		t.Errorf("Explicit username must win, got %q", s.Username)
	}
}
