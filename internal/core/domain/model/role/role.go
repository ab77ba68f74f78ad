// Package role defines the acting roles of the ordering flow and the
// resolution of an externally supplied role token into one of them.
//
// The token is opaque to this core: it is whatever the auth collaborator handed
// back at login. Resolution never fails loudly. Anything unrecognized resolves
// to Customer, the no-privileges default, and views deny access from there.
package role

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Role identifies who is acting on an order. It is a plain value; which
// transitions a role may perform is defined by the order state machine.
type Role int

const (
	// Customer is the zero value and the no-privileges default. Unknown or
	// absent tokens resolve to Customer.
	Customer Role = iota

	// Chef marks prepared orders as ready.
	Chef

	// Waiter delivers ready orders to the table.
	Waiter

	// Admin settles delivered orders as paid.
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Customer: "Customer",
		Chef:     "Chef",
		Waiter:   "Waiter",
		Admin:    "Admin",
	}
}

// String returns the human-readable name of the role.
// Invalid values are reported as Customer, the no-privileges default.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Customer"
}

// IsStaff reports whether the role belongs to restaurant staff.
func (r Role) IsStaff() bool {
	return r == Chef || r == Waiter || r == Admin
}

// Resolve maps an externally supplied role token to a Role.
//
// Two token shapes are accepted:
//   - a plain role name ("Admin", "Chef", "Waiter"), matched case-insensitively
//   - a JWT whose "role" claim carries the role name; the signature is NOT
//     verified because the token is trusted as given by the auth collaborator
//
// Everything else, including an empty token, resolves to Customer.
func Resolve(token string) Role {
	token = strings.TrimSpace(token)
	if token == "" {
		return Customer
	}

	if r, ok := resolvePlain(token); ok {
		return r
	}

	if claim, ok := roleClaim(token); ok {
		if r, plainOK := resolvePlain(claim); plainOK {
			return r
		}
	}

	return Customer
}

func resolvePlain(name string) (Role, bool) {
	for r, s := range getRoleStrings() {
		if strings.EqualFold(name, s) {
			return r, true
		}
	}
	return Customer, false
}

// roleClaim extracts the "role" claim from a JWT-shaped token without
// verifying its signature.
func roleClaim(token string) (string, bool) {
	if strings.Count(token, ".") != 2 {
		return "", false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", false
	}

	claim, ok := claims["role"].(string)
	return claim, ok
}
