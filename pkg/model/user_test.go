package model

import (
	"testing"
	"time"
)

func TestRole_Valid(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleUser, true},
		{RoleAdmin, true},
		{RoleSuperAdmin, true},
		{Role("moderator"), false},
		{Role(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := tt.role.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSession_HasRole(t *testing.T) {
	tests := []struct {
		name     string
		sessRole Role
		check    Role
		want     bool
	}{
		{"exact match user", RoleUser, RoleUser, true},
		{"exact match admin", RoleAdmin, RoleAdmin, true},
		{"super-admin is not admin", RoleSuperAdmin, RoleAdmin, false},
		{"admin is not super-admin", RoleAdmin, RoleSuperAdmin, false},
		{"empty role", Role(""), RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := &Session{Role: tt.sessRole}
			if got := sess.HasRole(tt.check); got != tt.want {
				t.Errorf("HasRole(%q) = %v, want %v", tt.check, got, tt.want)
			}
		})
	}
}

func TestSession_IsExpired(t *testing.T) {
	tests := []struct {
		name    string
		expires time.Time
		want    bool
	}{
		{"future", time.Now().Add(time.Hour), false},
		{"past", time.Now().Add(-time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := &Session{ExpiresAt: tt.expires}
			if got := sess.IsExpired(); got != tt.want {
				t.Errorf("IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}
