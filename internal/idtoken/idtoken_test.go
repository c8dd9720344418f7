package idtoken

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/clubauth/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestIssueVerify_RoundTrip(t *testing.T) {
	id := models.Identity{ID: "u1", Email: "test@example.com"}
	tok, err := Issue(id, "devprovider", secret, time.Now(), time.Hour)
	require.NoError(t, err)

	got, err := Verify(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	read, err := Read(tok)
	require.NoError(t, err)
	assert.Equal(t, id, read)
}

func TestVerify_WrongKey(t *testing.T) {
	tok, err := Issue(models.Identity{ID: "u1", Email: "a@b.co"}, "", secret, time.Now(), time.Hour)
	require.NoError(t, err)

	_, err = Verify(tok, []byte("other"))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	tok, err := Issue(models.Identity{ID: "u1", Email: "a@b.co"}, "", secret, time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)

	_, err = Verify(tok, secret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRead_Garbage(t *testing.T) {
	_, err := Read("not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRead_MissingEmail(t *testing.T) {
	tok, err := Issue(models.Identity{ID: "u1"}, "", secret, time.Now(), time.Hour)
	require.NoError(t, err)

	_, err = Read(tok)
	require.ErrorIs(t, err, ErrMissingClaim)
}
