package domain

// Action identifies a user-management operation subject to access control.
type Action string

const (
	ActionListUsers  Action = "list_users"
	ActionGetUser    Action = "get_user"
	ActionCreateUser Action = "create_user"
	ActionUpdateUser Action = "update_user"
	ActionDeleteUser Action = "delete_user"
)

// AccessPolicy is a pure decision table gating user-management operations.
// It never touches storage; callers resolve actor and target first.
type AccessPolicy struct{}

// CanPerform returns nil when actor may perform action, ErrForbidden otherwise.
// target is only consulted for delete, where two guards apply on top of the
// role requirement: an ADMIN record can never be deleted, and an admin may
// not delete their own account.
func (AccessPolicy) CanPerform(actor *User, action Action, target *User) error {
	if actor == nil {
		return ErrForbidden
	}

	switch action {
	case ActionGetUser:
		// Any authenticated actor may read a single user.
		return nil
	case ActionListUsers, ActionCreateUser, ActionUpdateUser:
		if !actor.IsAdmin() {
			return ErrForbidden
		}
		return nil
	case ActionDeleteUser:
		if !actor.IsAdmin() {
			return ErrForbidden
		}
		if target != nil {
			if target.IsAdmin() {
				return ErrForbidden
			}
			if target.ID == actor.ID {
				return ErrForbidden
			}
		}
		return nil
	}
	return ErrForbidden
}
