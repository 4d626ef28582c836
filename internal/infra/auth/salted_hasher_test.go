package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestSaltedHasher_HashRoundTrip(t *testing.T) {
	hasher := NewSaltedHasher()

	passwords := []string{"admin123", "NewPass1", "", "Pässwörd with spaces", "pending_reset:looks-like-a-status"}
	for _, password := range passwords {
		hash, salt, err := hasher.Hash(password)
		require.NoError(t, err)

		assert.Len(t, salt, 2*SaltBytes)
		assert.Len(t, hash, sha256.Size*2)
		assert.True(t, hasher.Check(password, hash, salt), "password %q should verify", password)
	}
}

func TestSaltedHasher_FreshSaltPerHash(t *testing.T) {
	hasher := NewSaltedHasher()

	hash1, salt1, err := hasher.Hash("NewPass1")
	require.NoError(t, err)
	hash2, salt2, err := hasher.Hash("NewPass1")
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)
}

func TestSaltedHasher_DigestFormat(t *testing.T) {
	hasher := NewSaltedHasher()

	sum := sha256.Sum256([]byte("admin123" + "00112233445566778899aabbccddeeff"))
	expected := hex.EncodeToString(sum[:])

	assert.Equal(t, expected, hasher.HashWithSalt("admin123", "00112233445566778899aabbccddeeff"))
}

func TestSaltedHasher_Check(t *testing.T) {
	hasher := NewSaltedHasher()
	hash, salt, err := hasher.Hash("staff123")
	require.NoError(t, err)

	assert.True(t, hasher.Check("staff123", hash, salt))
	assert.False(t, hasher.Check("staff124", hash, salt))
	assert.False(t, hasher.Check("staff123", hash, "ffffffffffffffffffffffffffffffff"))
	assert.False(t, hasher.Check("staff123", "", salt))
	assert.False(t, hasher.Check("staff123", hash, ""))
	assert.False(t, hasher.Check("staff123", "not-a-digest", salt))
}

func TestSaltedHasher_HashRandomFailure(t *testing.T) {
	hasher := &saltedHasher{random: failingReader{}}

	hash, salt, err := hasher.Hash("NewPass1")
	assert.Error(t, err)
	assert.Empty(t, hash)
	assert.Empty(t, salt)
}
