package domain

import (
	"errors"
	"testing"
)

func TestAccessPolicy_RoleRequirements(t *testing.T) {
	var policy AccessPolicy
	admin := &User{ID: "a1", Role: RoleAdmin}
	user := &User{ID: "u1", Role: RoleUser}

	cases := []struct {
		name   string
		actor  *User
		action Action
		allow  bool
	}{
		{"admin lists users", admin, ActionListUsers, true},
		{"user lists users", user, ActionListUsers, false},
		{"user gets single user", user, ActionGetUser, true},
		{"admin creates user", admin, ActionCreateUser, true},
		{"user creates user", user, ActionCreateUser, false},
		{"admin updates user", admin, ActionUpdateUser, true},
		{"user updates user", user, ActionUpdateUser, false},
		{"user deletes user", user, ActionDeleteUser, false},
		{"nil actor", nil, ActionGetUser, false},
		{"unknown action", admin, Action("reboot"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := policy.CanPerform(tc.actor, tc.action, nil)
			if tc.allow && err != nil {
				t.Fatalf("expected allow, got %v", err)
			}
			if !tc.allow && !errors.Is(err, ErrForbidden) {
				t.Fatalf("expected ErrForbidden, got %v", err)
			}
		})
	}
}

func TestAccessPolicy_DeleteGuards(t *testing.T) {
	var policy AccessPolicy
	admin := &User{ID: "a1", Role: RoleAdmin}
	otherAdmin := &User{ID: "a2", Role: RoleAdmin}
	user := &User{ID: "u1", Role: RoleUser}

	if err := policy.CanPerform(admin, ActionDeleteUser, user); err != nil {
		t.Fatalf("admin deleting a regular user should be allowed, got %v", err)
	}

	// An ADMIN record can never be deleted, regardless of actor.
	if err := policy.CanPerform(admin, ActionDeleteUser, otherAdmin); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden deleting an admin record, got %v", err)
	}

	// An admin may not delete their own account.
	if err := policy.CanPerform(admin, ActionDeleteUser, admin); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden on admin self-deletion, got %v", err)
	}
}
