package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	token, err := SignAccess(secret, "42", "admin", time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := AccessClaimsFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := SignAccess([]byte("secret"), "42", "admin", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(token, []byte("other"))
	require.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	token, err := SignAccess(secret, "42", "admin", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(token, secret)
	require.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	t.Parallel()

	_, err := AccessClaimsFromToken("not-a-token", []byte("secret"))
	require.Error(t, err)
}
