//go:build unit

package user_test

import (
	"testing"

	"vehicle-rental/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  user.Role
		errIs error
	}{
		{name: "customer OK", input: "customer", want: user.RoleCustomer},
		{name: "admin OK", input: "admin", want: user.RoleAdmin},
		{name: "unknown role NG", input: "operator", errIs: user.ErrInvalidRole},
		{name: "empty role NG", input: "", errIs: user.ErrInvalidRole},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := user.NewRole(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRole_Level(t *testing.T) {
	assert.Greater(t, user.RoleAdmin.Level(), user.RoleCustomer.Level())
	assert.Zero(t, user.Role("guest").Level())
}

func TestNewEmail(t *testing.T) {
	email, err := user.NewEmail("  jane@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", email.Value())

	_, err = user.NewEmail("not-an-email")
	assert.ErrorIs(t, err, user.ErrInvalidEmail)
}
