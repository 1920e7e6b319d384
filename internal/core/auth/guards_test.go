package auth

import "testing"

func TestCanRegister(t *testing.T) {
	tests := []struct {
		name        string
		ctx         RegisterContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "new worker account",
			ctx:         RegisterContext{Email: "ravi@example.com", Password: "pw", Name: "Ravi", Type: "worker"},
			wantAllowed: true,
		},
		{
			name:        "new employer account",
			ctx:         RegisterContext{Email: "asha@example.com", Password: "pw", Name: "Asha", Type: "employer"},
			wantAllowed: true,
		},
		{
			name:        "email taken",
			ctx:         RegisterContext{Email: "ravi@example.com", Password: "pw", Name: "Ravi", Type: "worker", EmailTaken: true},
			wantAllowed: false,
			wantReason:  "Email already registered",
		},
		{
			name:        "missing password",
			ctx:         RegisterContext{Email: "ravi@example.com", Name: "Ravi", Type: "worker"},
			wantAllowed: false,
			wantReason:  "email, password and name are required",
		},
		{
			name:        "unknown type",
			ctx:         RegisterContext{Email: "ravi@example.com", Password: "pw", Name: "Ravi", Type: "admin"},
			wantAllowed: false,
			wantReason:  `type must be "worker" or "employer" (got "admin")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanRegister(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanLogin(t *testing.T) {
	tests := []struct {
		name        string
		ctx         LoginContext
		wantAllowed bool
	}{
		{"valid credentials", LoginContext{UserExists: true, PasswordMatch: true}, true},
		{"unknown user", LoginContext{UserExists: false}, false},
		{"wrong password", LoginContext{UserExists: true, PasswordMatch: false}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanLogin(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != MsgInvalidCredentials {
				t.Errorf("Reason = %q, want %q", result.Reason, MsgInvalidCredentials)
			}
		})
	}
}

func TestGuardResult_Error(t *testing.T) {
	if err := (GuardResult{Allowed: true}).Error(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	if err := (GuardResult{Reason: "nope"}).Error(); err == nil || err.Error() != "nope" {
		t.Errorf("expected error 'nope', got %v", err)
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Ravi@Example.COM "); got != "ravi@example.com" {
		t.Errorf("NormalizeEmail() = %q", got)
	}
}
