// internal/app/features/users/types.go
package users

import (
	"github.com/dalemusser/pokerhub/internal/app/system/paging"
	"github.com/dalemusser/pokerhub/internal/domain/models"
)

// userInput is the POST /api/users body. Dates arrive as strings and
// are parsed during validation. Clients may send a single "role" or a
// "roles" array; both are merged.
type userInput struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	DateOfBirth string   `json:"dateOfBirth"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Role        string   `json:"role"`
	Roles       []string `json:"roles"`
	IsActive    *bool    `json:"isActive"`
}

// roles returns every role named in the input, in order, without
// duplicates. Entries are compared exactly as given.
func (in userInput) roles() []string {
	seen := map[string]bool{}
	var out []string
	add := func(r string) {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	if in.Role != "" {
		add(in.Role)
	}
	for _, r := range in.Roles {
		add(r)
	}
	return out
}

type listResponse struct {
	Users      []models.User     `json:"users"`
	Pagination paging.Pagination `json:"pagination"`
}
