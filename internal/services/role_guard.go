package services

import (
	"strings"

	"catalog/internal/models"
)

// Authorize decides whether an authenticated user may use a route that
// accepts the given roles. A route declaring no roles admits every user.
func Authorize(user *models.User, roles ...models.Role) error {
	if user == nil {
		return newError(ErrUnauthorized, "User not found (request)")
	}
	if len(roles) == 0 || user.HasAnyRole(roles...) {
		return nil
	}

	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	return newError(ErrForbidden, "User %s need a valid role: [%s]", user.FullName, strings.Join(names, ", "))
}
