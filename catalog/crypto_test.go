package catalog

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptPayload(t *testing.T) {
	const key = "MundoEscolar$2025_Seguro"

	t.Run("round trip", func(t *testing.T) {
		plain := []byte(`[{"codigo":"A1","descripcion":"Lápiz","precio":"1.5"}]`)

		encoded, err := EncryptPayload(plain, key)
		require.NoError(t, err)
		assert.NotEqual(t, string(plain), encoded)

		got, err := DecryptPayload(encoded, key)
		require.NoError(t, err)
		assert.Equal(t, plain, got)
	})

	t.Run("round trip at block boundary", func(t *testing.T) {
		plain := make([]byte, 32)
		for i := range plain {
			plain[i] = byte('a' + i%26)
		}
		encoded, err := EncryptPayload(plain, key)
		require.NoError(t, err)

		got, err := DecryptPayload(encoded, key)
		require.NoError(t, err)
		assert.Equal(t, plain, got)
	})

	t.Run("wrong key fails", func(t *testing.T) {
		encoded, err := EncryptPayload([]byte(`{"products":[]}`), key)
		require.NoError(t, err)

		_, err = DecryptPayload(encoded, "otra-clave")
		assert.ErrorIs(t, err, ErrDecryptionFailed)
	})

	t.Run("long keys are truncated consistently", func(t *testing.T) {
		longKey := "0123456789abcdef0123456789abcdefEXTRA"
		encoded, err := EncryptPayload([]byte("dato"), longKey)
		require.NoError(t, err)

		got, err := DecryptPayload(encoded, longKey[:32])
		require.NoError(t, err)
		assert.Equal(t, []byte("dato"), got)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		_, err := EncryptPayload([]byte("dato"), "")
		assert.ErrorIs(t, err, ErrEmptyKey)

		_, err = DecryptPayload("aGVsbG8=", "")
		assert.ErrorIs(t, err, ErrEmptyKey)
	})

	t.Run("bad base64", func(t *testing.T) {
		_, err := DecryptPayload("%%%", key)
		assert.ErrorIs(t, err, ErrDecryptionFailed)
	})

	t.Run("truncated ciphertext", func(t *testing.T) {
		_, err := DecryptPayload("aGVsbG8=", key)
		assert.ErrorIs(t, err, ErrDecryptionFailed)
	})
}

func TestFileSource(t *testing.T) {
	const key = "clave-de-prueba"
	plain := []byte(`[{"codigo":"A1","descripcion":"Lápiz","precio":"1.5"}]`)

	t.Run("plaintext file", func(t *testing.T) {
		path := t.TempDir() + "/productos.json"
		require.NoError(t, os.WriteFile(path, plain, 0o644))

		p, err := FileSource{Path: path}.Load(t.Context())
		require.NoError(t, err)
		require.Len(t, p.Products, 1)
		assert.Equal(t, "A1", p.Products[0].Code)
	})

	t.Run("encrypted file", func(t *testing.T) {
		encoded, err := EncryptPayload(plain, key)
		require.NoError(t, err)

		path := t.TempDir() + "/productos.json"
		require.NoError(t, os.WriteFile(path, []byte(encoded), 0o644))

		p, err := FileSource{Path: path, Key: key}.Load(t.Context())
		require.NoError(t, err)
		require.Len(t, p.Products, 1)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := FileSource{Path: t.TempDir() + "/nope.json"}.Load(t.Context())
		assert.Error(t, err)
	})
}
