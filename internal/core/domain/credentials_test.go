package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
)

func TestCredentials(t *testing.T) {
	t.Run("Short passphrase is rejected", func(t *testing.T) {
		_, err := domain.HashPassphrase("short")
		assert.ErrorIs(t, err, domain.ErrPassphraseTooShort)
	})

	t.Run("Hash then check", func(t *testing.T) {
		hash, err := domain.HashPassphrase("correct horse")
		require.NoError(t, err)
		assert.NotEqual(t, "correct horse", hash)

		creds := domain.Credentials{PassphraseHash: hash}
		assert.NoError(t, creds.Check("correct horse"))
		assert.ErrorIs(t, creds.Check("battery staple"), domain.ErrInvalidCredentials)
	})

	t.Run("Empty hash never matches", func(t *testing.T) {
		assert.ErrorIs(t, domain.Credentials{}.Check(""), domain.ErrInvalidCredentials)
	})
}
