package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booksdesk-dev/booksdesk/internal/companies"
	"github.com/booksdesk-dev/booksdesk/internal/model"
)

// stubChecker accepts a fixed username/password pair.
type stubChecker struct {
	username string
	password string
	role     model.Role
}

func (s stubChecker) Authenticate(username, password string) (model.Role, bool) {
	if username == s.username && password == s.password {
		return s.role, true
	}
	return "", false
}

func newTestManager(timeout time.Duration) *Manager {
	checker := stubChecker{username: "supervisor", password: "letmein01", role: model.RoleSupervisor}
	return NewManager(checker, companies.NewService(companies.Defaults()), 3, timeout)
}

func TestLoginValidationMessages(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		message  string
	}{
		{"both empty", "", "", MsgMissingFields},
		{"missing password", "supervisor", "", MsgMissingFields},
		{"short username", "ab", "letmein01", MsgShortUsername},
		{"short password", "supervisor", "12345", MsgShortPassword},
		{"unknown user", "stranger", "letmein01", MsgBadCredentials},
		{"wrong password", "supervisor", "wrong-pass", MsgBadCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(time.Minute)

			res := m.Login(tt.username, tt.password)
			assert.False(t, res.Success)
			assert.Equal(t, tt.message, res.Message)
			assert.Equal(t, 1, m.State().LoginAttempts, "failure consumes an attempt")
			assert.False(t, m.State().Authenticated)
		})
	}
}

func TestLoginSuccess(t *testing.T) {
	m := newTestManager(time.Minute)

	m.Login("ab", "letmein01")
	m.Login("supervisor", "short")
	assert.Equal(t, 2, m.State().LoginAttempts)

	res := m.Login("supervisor", "letmein01")
	require.True(t, res.Success)
	assert.Empty(t, res.Message)

	st := m.State()
	assert.True(t, st.Authenticated)
	assert.Equal(t, 0, st.LoginAttempts, "success resets the counter")
	require.NotNil(t, st.User)
	assert.Equal(t, "supervisor", st.User.Username)
	assert.Equal(t, model.RoleSupervisor, st.User.Role)
	assert.NotEmpty(t, st.User.ID)
	assert.NotEmpty(t, st.User.Token)
	assert.Nil(t, st.Company)
}

func TestLoginCeilingCheckedBeforeValidation(t *testing.T) {
	m := newTestManager(time.Minute)

	for i := 0; i < 3; i++ {
		res := m.Login("supervisor", "bad")
		assert.Equal(t, MsgShortPassword, res.Message)
	}
	assert.Equal(t, 3, m.State().LoginAttempts)

	// 4th call fails with the rate-limit message even with valid
	// credentials, and does not consume a further slot.
	res := m.Login("supervisor", "letmein01")
	assert.False(t, res.Success)
	assert.Equal(t, MsgRateLimited, res.Message)
	assert.Equal(t, 3, m.State().LoginAttempts)

	// There is no unlock rule: repeated valid logins stay refused.
	for i := 0; i < 5; i++ {
		res = m.Login("supervisor", "letmein01")
		assert.Equal(t, MsgRateLimited, res.Message)
	}
}

func TestSelectCompany(t *testing.T) {
	m := newTestManager(time.Minute)

	// Unauthenticated sessions may not attach a company.
	assert.False(t, m.SelectCompany("abc_motors"))
	assert.Nil(t, m.State().Company)

	require.True(t, m.Login("supervisor", "letmein01").Success)

	assert.False(t, m.SelectCompany("unknown_co"))
	assert.Nil(t, m.State().Company)

	assert.True(t, m.SelectCompany("black_hp"))
	st := m.State()
	require.NotNil(t, st.Company)
	assert.Equal(t, "Black HP Ltd", st.Company.Name)

	// Switching companies does not require re-authentication.
	assert.True(t, m.SelectCompany("crystal_it"))
	assert.Equal(t, "crystal_it", m.State().Company.ID)
}

func TestLogout(t *testing.T) {
	m := newTestManager(time.Minute)

	// Idempotent on an empty session.
	m.Logout()
	st := m.State()
	assert.False(t, st.Authenticated)
	assert.Nil(t, st.User)
	assert.Nil(t, st.Company)

	require.True(t, m.Login("supervisor", "letmein01").Success)
	require.True(t, m.SelectCompany("abc_motors"))

	m.Logout()
	st = m.State()
	assert.False(t, st.Authenticated)
	assert.Nil(t, st.User)
	assert.Nil(t, st.Company)
	assert.Equal(t, 0, st.LoginAttempts)
}

func TestIdleExpiry(t *testing.T) {
	m := newTestManager(20 * time.Millisecond)

	require.True(t, m.Login("supervisor", "letmein01").Success)
	require.True(t, m.SelectCompany("abc_motors"))

	assert.Eventually(t, func() bool {
		return !m.State().Authenticated
	}, time.Second, 5*time.Millisecond, "timer should reset the session")
	assert.Nil(t, m.State().Company)
}

func TestLoginReplacesPendingTimer(t *testing.T) {
	m := newTestManager(40 * time.Millisecond)

	require.True(t, m.Login("supervisor", "letmein01").Success)
	time.Sleep(25 * time.Millisecond)

	// A second login re-arms the timer; the first timer must not fire.
	require.True(t, m.Login("supervisor", "letmein01").Success)
	time.Sleep(25 * time.Millisecond)
	assert.True(t, m.State().Authenticated, "re-armed timer should not have fired yet")

	assert.Eventually(t, func() bool {
		return !m.State().Authenticated
	}, time.Second, 5*time.Millisecond)
}

func TestCompanies(t *testing.T) {
	m := newTestManager(time.Minute)
	assert.Len(t, m.Companies(), 3)
}
