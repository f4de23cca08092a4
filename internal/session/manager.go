// Package session gates access to the shell behind a login check,
// enforces the login-attempt ceiling and expires idle sessions.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/booksdesk-dev/booksdesk/internal/model"
)

// Messages surfaced to the user on login failure.
const (
	MsgRateLimited    = "Too many login attempts. Please try again later."
	MsgMissingFields  = "Please enter both username and password"
	MsgShortUsername  = "Username must be at least 3 characters"
	MsgShortPassword  = "Password must be at least 6 characters"
	MsgBadCredentials = "Invalid username or password"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// CredentialChecker verifies a username/password pair and resolves the
// user's role.
type CredentialChecker interface {
	Authenticate(username, password string) (model.Role, bool)
}

// CompanyRegistry looks up selectable companies.
type CompanyRegistry interface {
	Get(id string) (model.Company, bool)
	All() []model.Company
}

// Result is the outcome of a login attempt.
type Result struct {
	Success bool
	Message string
}

// State is a point-in-time copy of the session for display.
type State struct {
	User          *model.User
	Company       *model.Company
	Authenticated bool
	LoginAttempts int
}

// Manager owns authentication state, the failed-attempt counter and
// the idle-expiry timer. The timer callback is the only concurrent
// actor, so a single mutex guards all state.
type Manager struct {
	credentials CredentialChecker
	companies   CompanyRegistry
	maxAttempts int
	idleTimeout time.Duration

	mu            sync.Mutex
	user          *model.User
	company       *model.Company
	authenticated bool
	attempts      int
	timer         *time.Timer
}

// NewManager creates a Manager. maxAttempts is the failed-login
// ceiling; idleTimeout is how long an authenticated session may sit
// idle before it is reset.
func NewManager(credentials CredentialChecker, companies CompanyRegistry, maxAttempts int, idleTimeout time.Duration) *Manager {
	return &Manager{
		credentials: credentials,
		companies:   companies,
		maxAttempts: maxAttempts,
		idleTimeout: idleTimeout,
	}
}

// Login checks the attempt ceiling, validates the credentials and, on
// success, opens an authenticated session and arms the idle timer.
//
// The ceiling is checked before anything else and does not consume a
// further attempt slot. Only a successful login resets the counter, so
// once the ceiling is reached the login screen stays locked; there is
// no time-based unlock.
func (m *Manager) Login(username, password string) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.attempts >= m.maxAttempts {
		return Result{Message: MsgRateLimited}
	}

	if msg, ok := validateCredentials(username, password); !ok {
		m.attempts++
		return Result{Message: msg}
	}

	role, ok := m.credentials.Authenticate(username, password)
	if !ok {
		m.attempts++
		return Result{Message: MsgBadCredentials}
	}

	m.user = &model.User{
		ID:       uuid.NewString(),
		Username: username,
		Role:     role,
		Token:    uuid.NewString(),
	}
	m.company = nil
	m.authenticated = true
	m.attempts = 0
	m.armTimerLocked()
	return Result{Success: true}
}

// validateCredentials reports the first violated input rule.
func validateCredentials(username, password string) (string, bool) {
	if username == "" || password == "" {
		return MsgMissingFields, false
	}
	if len(username) < minUsernameLen {
		return MsgShortUsername, false
	}
	if len(password) < minPasswordLen {
		return MsgShortPassword, false
	}
	return "", true
}

// SelectCompany attaches a registered company to an authenticated
// session. It reports false, leaving the selection unchanged, when the
// id is unknown or the session is not authenticated.
func (m *Manager) SelectCompany(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.authenticated {
		return false
	}
	company, ok := m.companies.Get(id)
	if !ok {
		return false
	}
	m.company = &company
	return true
}

// Logout cancels any pending expiry timer and resets the session to
// its empty, unauthenticated state. Idempotent.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetLocked()
}

// State returns a copy of the current session for display.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := State{Authenticated: m.authenticated, LoginAttempts: m.attempts}
	if m.user != nil {
		u := *m.user
		st.User = &u
	}
	if m.company != nil {
		c := *m.company
		st.Company = &c
	}
	return st
}

// Companies returns the selectable company registry.
func (m *Manager) Companies() []model.Company {
	return m.companies.All()
}

// armTimerLocked replaces any pending expiry timer with a fresh one.
// Only login arms the timer; other activity does not renew it.
func (m *Manager) armTimerLocked() {
	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(m.idleTimeout, m.expire)
}

// expire is the timer callback; it takes the same path as Logout.
func (m *Manager) expire() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetLocked()
}

func (m *Manager) resetLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.user = nil
	m.company = nil
	m.authenticated = false
	m.attempts = 0
}
