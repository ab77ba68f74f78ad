package order

import "tableside/internal/core/domain/model/role"

// Transition pairs a lifecycle status with its successor.
type Transition struct {
	From Status
	To   Status
}

// getTransitionRoles returns the role authorized for each legal transition.
// The table is the single source of truth for role gating: a (from, to) pair
// absent from it is not a legal transition at all.
func getTransitionRoles() map[Transition]role.Role {
	return map[Transition]role.Role{
		{From: Ordered, To: Ready}:   role.Chef,
		{From: Ready, To: Delivered}: role.Waiter,
		{From: Delivered, To: Paid}:  role.Admin,
	}
}

// AuthorizedRole returns the role allowed to move an order from one status to
// the next. The second return value is false when the pair is not a legal
// transition.
func AuthorizedRole(from, to Status) (role.Role, bool) {
	r, ok := getTransitionRoles()[Transition{From: from, To: to}]
	return r, ok
}

// TransitionsFor returns the capability set of a role: every transition the
// role is authorized to perform. The function is pure; it derives the set from
// the static transition table and nothing else. Customer gets an empty set.
func TransitionsFor(r role.Role) []Transition {
	transitions := make([]Transition, 0, 1)
	for t, authorized := range getTransitionRoles() {
		if authorized == r {
			transitions = append(transitions, t)
		}
	}
	return transitions
}

// QueueStatus returns the status whose orders a role acts on: each role's view
// only ever displays orders one step below its authorized transition. Chef sees
// Ordered, Waiter sees Ready, Admin sees Delivered. The second return value is
// false for roles with no queue.
func QueueStatus(r role.Role) (Status, bool) {
	for t, authorized := range getTransitionRoles() {
		if authorized == r {
			return t.From, true
		}
	}
	return Unknown, false
}
