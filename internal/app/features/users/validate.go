// internal/app/features/users/validate.go
package users

import (
	"github.com/dalemusser/pokerhub/internal/app/system/apierr"
	"github.com/dalemusser/pokerhub/internal/app/system/inputval"
	"github.com/dalemusser/pokerhub/internal/app/system/normalize"
	"github.com/dalemusser/pokerhub/internal/domain/models"
)

// validateUser checks in field by field and returns the first failure.
func validateUser(in userInput) error {
	if inputval.IsBlank(in.FirstName) {
		return apierr.Invalid("first name is required")
	}
	if !inputval.IsValidEmail(in.Email) {
		return apierr.Invalid("email is invalid")
	}
	if !inputval.IsValidPassword(in.Password) {
		return apierr.Invalid("password must be at least %d characters", inputval.MinPasswordLen)
	}
	for _, r := range in.roles() {
		if !inputval.OneOf(r, models.UserRoles) {
			return apierr.Invalid("role is invalid: %s", r)
		}
	}
	if inputval.IsBlank(in.LastName) {
		return apierr.Invalid("last name is required")
	}
	if inputval.IsBlank(in.DateOfBirth) {
		return apierr.Invalid("date of birth is required")
	}
	if _, ok := normalize.Date(in.DateOfBirth); !ok {
		return apierr.Invalid("date of birth is invalid")
	}
	return nil
}
