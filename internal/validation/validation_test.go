package validation

import "testing"

func TestPassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{"valid", "Abcdef1!", true},
		{"too short", "Ab1!", false},
		{"no uppercase or symbol", "alllowercase1", false},
		{"no digit", "Abcdefg!", false},
		{"no symbol", "Abcdefg1", false},
		{"no lowercase", "ABCDEFG1!", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := Password(tc.password)
			if (msg == "") != tc.wantOK {
				t.Errorf("Password(%q) = %q, want ok=%v", tc.password, msg, tc.wantOK)
			}
		})
	}
}

func TestUsername(t *testing.T) {
	cases := []struct {
		name     string
		username string
		wantOK   bool
	}{
		{"valid", "alice1", true},
		{"too short", "bob", false},
		{"non-alphanumeric", "alice_smith", false},
		{"exactly five", "alice", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := Username(tc.username)
			if (msg == "") != tc.wantOK {
				t.Errorf("Username(%q) = %q, want ok=%v", tc.username, msg, tc.wantOK)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	if msg := Email("alice@x.com"); msg != "" {
		t.Errorf("valid email rejected: %q", msg)
	}
	if msg := Email("not-an-email"); msg == "" {
		t.Error("invalid email accepted")
	}
}

func TestRegistrationCollectsAllErrors(t *testing.T) {
	errs := Registration("ab", "bad", "12", "weak")
	if len(errs) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %v", len(errs), errs)
	}

	fields := map[string]bool{}
	for _, fe := range errs {
		fields[fe.Field] = true
	}
	for _, f := range []string{"username", "email", "phone", "password"} {
		if !fields[f] {
			t.Errorf("missing error for field %q", f)
		}
	}
}

func TestRegistrationPhoneOptional(t *testing.T) {
	errs := Registration("alice", "alice@x.com", "", "Abcdef1!")
	if !errs.Empty() {
		t.Errorf("expected no errors with empty phone, got %v", errs)
	}
}
