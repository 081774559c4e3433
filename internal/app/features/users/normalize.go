// internal/app/features/users/normalize.go
package users

import (
	"time"

	"github.com/dalemusser/pokerhub/internal/app/system/apierr"
	"github.com/dalemusser/pokerhub/internal/app/system/normalize"
	"github.com/dalemusser/pokerhub/internal/domain/models"
	"golang.org/x/crypto/bcrypt"
)

// normalizeUser converts validated input into the stored shape. It does
// not touch the store.
func normalizeUser(in userInput, now time.Time, hashCost int) (models.User, error) {
	dob, _ := normalize.Date(in.DateOfBirth)

	roles := in.roles()
	if len(roles) == 0 {
		roles = []string{models.RoleParticipant}
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), hashCost)
	if err != nil {
		return models.User{}, apierr.StoreFailure(err, "Failed to hash password")
	}

	return models.User{
		FirstName:        normalize.Name(in.FirstName),
		LastName:         normalize.Name(in.LastName),
		DateOfBirth:      dob,
		RegistrationDate: now,
		Email:            normalize.Email(in.Email),
		Password:         string(hash),
		Roles:            roles,
		IsActive:         active,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}
