package auth

import (
	"testing"

	"tetatete/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	password := "Passw0rd"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("Wrong0pass", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_HashesDiffer(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("Passw0rd")
	require.NoError(t, err)
	second, err := hasher.Hash("Passw0rd")
	require.NoError(t, err)

	// bcrypt salts every hash, so identical inputs must not collide.
	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_DefaultCostWithoutConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{}).(*bcryptHasher)

	assert.Positive(t, hasher.cost)
}
