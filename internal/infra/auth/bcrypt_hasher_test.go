package auth

import (
	"strings"
	"testing"

	"cakes/config"
	domainerrors "cakes/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	return NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("Chocolate#2024")
	require.NoError(t, err)
	assert.NotEqual(t, "Chocolate#2024", hash)

	assert.True(t, hasher.Check("Chocolate#2024", hash))
	assert.False(t, hasher.Check("chocolate#2024", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("Chocolate#2024")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_FallsBackToDefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewBcryptHasher(nil).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasher_RejectsBadLengths(t *testing.T) {
	hasher := newTestHasher()

	for _, password := range []string{"", "short", strings.Repeat("a", 73)} {
		_, err := hasher.Hash(password)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "password length %d", len(password))
	}
}

func TestBcryptHasher_CheckInvalidHash(t *testing.T) {
	hasher := newTestHasher()

	assert.False(t, hasher.Check("Chocolate#2024", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_NeedsRehash(t *testing.T) {
	hasher := newTestHasher()

	current, err := hasher.Hash("Chocolate#2024")
	require.NoError(t, err)
	assert.False(t, hasher.NeedsRehash(current))

	stronger, err := bcrypt.GenerateFromPassword([]byte("Chocolate#2024"), bcrypt.MinCost+1)
	require.NoError(t, err)
	assert.True(t, hasher.NeedsRehash(string(stronger)))

	assert.False(t, hasher.NeedsRehash("not-a-bcrypt-hash"))
}
