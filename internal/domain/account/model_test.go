package account

import "testing"

// TestAccount_Validate tests Account validation rules.
func TestAccount_Validate(t *testing.T) {
	valid := Account{ID: "acc1", Email: "bithu@chidoan.vn", Role: RoleAdmin}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid account, got: %v", err)
	}

	tests := []struct {
		name    string
		modify  func(a *Account)
		wantErr error
	}{
		{"empty email", func(a *Account) { a.Email = " " }, ErrEmptyEmail},
		{"no at sign", func(a *Account) { a.Email = "bithu.chidoan.vn" }, ErrInvalidEmail},
		{"bad role", func(a *Account) { a.Role = "coach" }, ErrInvalidRole},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := valid
			tc.modify(&a)
			if err := a.Validate(); err != tc.wantErr {
				t.Fatalf("expected %v, got: %v", tc.wantErr, err)
			}
		})
	}
}

// TestAccount_PasswordRoundTrip tests hashing and verification.
func TestAccount_PasswordRoundTrip(t *testing.T) {
	var a Account
	if err := a.SetPassword(""); err != ErrEmptyPassword {
		t.Fatalf("expected %v, got: %v", ErrEmptyPassword, err)
	}
	if err := a.SetPassword("short"); err != ErrPasswordTooShort {
		t.Fatalf("expected %v, got: %v", ErrPasswordTooShort, err)
	}
	if err := a.SetPassword("doan vien so mot"); err != nil {
		t.Fatalf("expected password to be set, got: %v", err)
	}
	if err := a.CheckPassword("doan vien so mot"); err != nil {
		t.Fatalf("expected password to verify, got: %v", err)
	}
	if err := a.CheckPassword("wrong password here"); err != ErrWrongPassword {
		t.Fatalf("expected %v, got: %v", ErrWrongPassword, err)
	}
}

// TestAccount_CheckPassword_NoHash tests verification against an unset hash.
func TestAccount_CheckPassword_NoHash(t *testing.T) {
	var a Account
	if err := a.CheckPassword("anything at all"); err != ErrWrongPassword {
		t.Fatalf("expected %v, got: %v", ErrWrongPassword, err)
	}
}
