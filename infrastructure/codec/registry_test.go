package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitdata/domain"
	"github.com/rios0rios0/gitdata/infrastructure/codec"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should register and dispatch a decoder by kind", func(t *testing.T) {
		t.Parallel()

		// given
		registry := codec.NewRegistry()
		registry.Register("echo", func(data []byte) (any, error) {
			return string(data), nil
		})

		// when
		decoded, err := registry.Decode("echo", []byte("payload"))

		// then
		require.NoError(t, err)
		assert.Equal(t, "payload", decoded)
	})

	t.Run("should return a descriptive error for an unknown kind", func(t *testing.T) {
		t.Parallel()

		// given
		registry := codec.NewRegistry()

		// when
		decoded, err := registry.Decode("nonexistent", []byte("{}"))

		// then
		require.Error(t, err)
		assert.Nil(t, decoded)
		assert.Contains(t, err.Error(), "unknown document kind")
		assert.Contains(t, err.Error(), "nonexistent")
	})

	t.Run("should list registered kind names", func(t *testing.T) {
		t.Parallel()

		// given
		registry := codec.NewDefaultRegistry()

		// then
		assert.ElementsMatch(t, []string{"tree", "blob", "new-blob"}, registry.Names())
	})
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should decode a tree document into a typed Tree", func(t *testing.T) {
		t.Parallel()

		// given
		registry := codec.NewDefaultRegistry()
		raw := []byte(`{
			"sha": "root",
			"url": "u",
			"tree": [{"path":"a.txt","sha":"s","type":"blob","mode":"100644"}]
		}`)

		// when
		decoded, err := registry.Decode("tree", raw)

		// then
		require.NoError(t, err)
		tree, ok := decoded.(domain.Tree)
		require.True(t, ok)
		assert.Equal(t, "root", tree.SHA)
		require.Len(t, tree.Entries, 1)
		assert.Equal(t, domain.ModeFile, tree.Entries[0].Mode)
	})

	t.Run("should decode a new-blob response", func(t *testing.T) {
		t.Parallel()

		// given
		registry := codec.NewDefaultRegistry()

		// when
		decoded, err := registry.Decode("new-blob", []byte(`{"url":"u","sha":"s"}`))

		// then
		require.NoError(t, err)
		blob, ok := decoded.(domain.NewBlob)
		require.True(t, ok)
		assert.Equal(t, "s", blob.SHA)
	})

	t.Run("should propagate a decode failure unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		registry := codec.NewDefaultRegistry()

		// when
		decoded, err := registry.Decode("blob", []byte(`{"content":"c"}`))

		// then
		require.Error(t, err)
		assert.Nil(t, decoded)
		assert.Contains(t, err.Error(), "Blob")
	})
}
