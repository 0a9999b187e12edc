//go:build unit

package user_test

import (
	"testing"

	"hotel-booking/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		for _, s := range []string{"guest", "staff", "admin"} {
			role, err := user.NewRole(s)
			require.NoError(t, err)
			assert.Equal(t, s, role.String())
		}

		_, err := user.NewRole("owner")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
		_, err = user.NewRole("")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("ranking", func(t *testing.T) {
		cases := []struct {
			role, min user.Role
			want      bool
		}{
			{user.RoleAdmin, user.RoleStaff, true},
			{user.RoleAdmin, user.RoleAdmin, true},
			{user.RoleStaff, user.RoleStaff, true},
			{user.RoleStaff, user.RoleAdmin, false},
			{user.RoleGuest, user.RoleStaff, false},
			{user.RoleGuest, user.RoleGuest, true},
			{user.Role("owner"), user.RoleGuest, false},
			{user.RoleAdmin, user.Role("owner"), false},
		}
		for _, tc := range cases {
			assert.Equal(t, tc.want, tc.role.AtLeast(tc.min), "%s >= %s", tc.role, tc.min)
		}
	})
}
