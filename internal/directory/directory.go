// Package directory holds the registered users and their credentials.
package directory

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/booksdesk-dev/booksdesk/internal/model"
)

// Seed describes one user to register.
type Seed struct {
	Username string
	Password string
	Role     model.Role
}

type user struct {
	role model.Role
	hash []byte
}

// Directory answers credential checks against the registered users.
type Directory struct {
	users map[string]user
}

// New builds a Directory, hashing each seed password.
func New(seeds []Seed) (*Directory, error) {
	d := &Directory{users: make(map[string]user, len(seeds))}
	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password for %s: %w", s.Username, err)
		}
		d.users[s.Username] = user{role: s.Role, hash: hash}
	}
	return d, nil
}

// Defaults returns the demo users.
func Defaults() []Seed {
	return []Seed{
		{Username: "supervisor", Password: "letmein01", Role: model.RoleSupervisor},
		{Username: "accountant", Password: "ledger123", Role: model.RoleAccountant},
		{Username: "admin", Password: "admin12345", Role: model.RoleAdmin},
		{Username: "viewer", Password: "viewonly1", Role: model.RoleViewer},
	}
}

// Authenticate verifies a username/password pair and resolves the
// user's role.
func (d *Directory) Authenticate(username, password string) (model.Role, bool) {
	u, ok := d.users[username]
	if !ok {
		return "", false
	}
	if bcrypt.CompareHashAndPassword(u.hash, []byte(password)) != nil {
		return "", false
	}
	return u.role, true
}
