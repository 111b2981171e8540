package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserPasswordHashing(t *testing.T) {
	var user User
	require.NoError(t, user.SetPassword("pw"))

	require.NotEqual(t, "pw", user.PasswordHash)
	require.True(t, user.CheckPassword("pw"))
	require.False(t, user.CheckPassword("other"))
	require.False(t, user.CheckPassword(""))
}
