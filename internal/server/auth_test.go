package server

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"
)

func newPublicKey(t *testing.T) gossh.PublicKey {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func writeAuthorizedKeys(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "authorized_keys")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0600))
	return path
}

func authorizedLine(key gossh.PublicKey) string {
	return strings.TrimSpace(string(gossh.MarshalAuthorizedKey(key)))
}

func TestIsKeyAuthorized(t *testing.T) {
	known := newPublicKey(t)
	other := newPublicKey(t)

	path := writeAuthorizedKeys(t,
		"# team keys",
		"",
		"not a key at all",
		authorizedLine(known)+" alice@laptop",
	)

	tests := []struct {
		name string
		key  gossh.PublicKey
		want bool
	}{
		{"listed key", known, true},
		{"unlisted key", other, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isKeyAuthorized(tt.key, path))
		})
	}
}

func TestIsKeyAuthorized_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")

	assert.False(t, isKeyAuthorized(newPublicKey(t), path))
}

func TestIsKeyAuthorized_EmptyFile(t *testing.T) {
	path := writeAuthorizedKeys(t)

	assert.False(t, isKeyAuthorized(newPublicKey(t), path))
}
