// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user may hold. A user holds one or more.
const (
	RoleAdmin       = "admin"
	RoleFacilitator = "facilitator"
	RoleParticipant = "participant"
)

// UserRoles is the canonical list of roles, in display order.
var UserRoles = []string{RoleAdmin, RoleFacilitator, RoleParticipant}

// User is an account that can facilitate or take part in sessions.
//
// Password holds a bcrypt hash and Token a transient auth token. Neither
// is ever serialized to JSON.
type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName        string             `bson:"first_name" json:"firstName"`
	LastName         string             `bson:"last_name" json:"lastName"`
	DateOfBirth      time.Time          `bson:"date_of_birth" json:"dateOfBirth"`
	RegistrationDate time.Time          `bson:"registration_date" json:"registrationDate"`
	Email            string             `bson:"email" json:"email"` // trimmed, lowercase, unique
	Password         string             `bson:"password" json:"-"`
	Token            *string            `bson:"token" json:"-"`
	Roles            []string           `bson:"roles" json:"roles"`
	IsActive         bool               `bson:"is_active" json:"isActive"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// HasRole reports whether u holds role.
func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
