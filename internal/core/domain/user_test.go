package domain

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"admin", RoleAdmin, false},
		{"customer", RoleCustomer, false},
		{"Admin", "", true},
		{"", "", true},
		{"superuser", "", true},
	}

	for _, tc := range cases {
		got, err := ParseRole(tc.in)
		if tc.wantErr {
			if err != ErrInvalidRole {
				t.Errorf("ParseRole(%q): expected ErrInvalidRole, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRole(%q): unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUser_HasRole(t *testing.T) {
	u := &User{Role: RoleCustomer}
	if !u.HasRole(RoleAdmin, RoleCustomer) {
		t.Fatal("customer should match admin|customer")
	}
	if u.HasRole(RoleAdmin) {
		t.Fatal("customer should not match admin")
	}

	var anon *User
	if anon.HasRole(RoleAdmin, RoleCustomer) {
		t.Fatal("nil user must not hold any role")
	}
}
