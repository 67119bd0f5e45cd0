package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitdata/domain"
)

func TestGitTreeDecode(t *testing.T) {
	t.Parallel()

	t.Run("should decode an entry without url and size as absent, not failed", func(t *testing.T) {
		t.Parallel()

		// given
		raw := []byte(`{"path":"a.txt","sha":"abc123","type":"blob","mode":"100644"}`)

		// when
		var entry domain.GitTree
		err := json.Unmarshal(raw, &entry)

		// then
		require.NoError(t, err)
		assert.Equal(t, "a.txt", entry.Path)
		assert.Equal(t, "abc123", entry.SHA)
		assert.Equal(t, domain.TypeBlob, entry.Type)
		assert.Equal(t, domain.ModeFile, entry.Mode)
		assert.Nil(t, entry.URL)
		assert.Nil(t, entry.Size)
	})

	t.Run("should decode url and size when present", func(t *testing.T) {
		t.Parallel()

		// given
		raw := []byte(`{
			"path": "bin/run.sh",
			"sha": "def456",
			"type": "blob",
			"mode": "100755",
			"url": "https://api.github.com/repos/o/r/git/blobs/def456",
			"size": 42
		}`)

		// when
		var entry domain.GitTree
		err := json.Unmarshal(raw, &entry)

		// then
		require.NoError(t, err)
		require.NotNil(t, entry.URL)
		require.NotNil(t, entry.Size)
		assert.Equal(t, "https://api.github.com/repos/o/r/git/blobs/def456", *entry.URL)
		assert.Equal(t, int64(42), *entry.Size)
		assert.Equal(t, domain.ModeExecutable, entry.Mode)
	})

	t.Run("should fail when a required field is absent", func(t *testing.T) {
		t.Parallel()

		// given
		raw := []byte(`{"path":"a.txt","type":"blob","mode":"100644"}`)

		// when
		var entry domain.GitTree
		err := json.Unmarshal(raw, &entry)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GitTree")
		assert.Contains(t, err.Error(), "sha")
	})

	t.Run("should surface an unknown mode through the entry's field path", func(t *testing.T) {
		t.Parallel()

		// given
		raw := []byte(`{"path":"a.txt","sha":"abc","type":"blob","mode":"999999"}`)

		// when
		var entry domain.GitTree
		err := json.Unmarshal(raw, &entry)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GitTree")
		assert.Contains(t, err.Error(), "mode")
		assert.Contains(t, err.Error(), "999999")
	})
}

func TestTreeDecode(t *testing.T) {
	t.Parallel()

	t.Run("should decode a listing preserving entry order", func(t *testing.T) {
		t.Parallel()

		// given
		raw := []byte(`{
			"sha": "root123",
			"url": "https://api.github.com/repos/o/r/git/trees/root123",
			"tree": [
				{"path":"z.txt","sha":"s1","type":"blob","mode":"100644"},
				{"path":"a","sha":"s2","type":"tree","mode":"040000"},
				{"path":"vendor","sha":"s3","type":"commit","mode":"160000"}
			]
		}`)

		// when
		var tree domain.Tree
		err := json.Unmarshal(raw, &tree)

		// then
		require.NoError(t, err)
		assert.Equal(t, "root123", tree.SHA)
		require.Len(t, tree.Entries, 3)
		assert.Equal(t, "z.txt", tree.Entries[0].Path)
		assert.Equal(t, "a", tree.Entries[1].Path)
		assert.Equal(t, "vendor", tree.Entries[2].Path)
		assert.Equal(t, domain.ModeSubmodule, tree.Entries[2].Mode)
		assert.Nil(t, tree.Truncated)
	})

	t.Run("should decode the truncated flag when present", func(t *testing.T) {
		t.Parallel()

		// given
		raw := []byte(`{"sha":"s","url":"u","tree":[],"truncated":true}`)

		// when
		var tree domain.Tree
		err := json.Unmarshal(raw, &tree)

		// then
		require.NoError(t, err)
		require.NotNil(t, tree.Truncated)
		assert.True(t, *tree.Truncated)
		assert.Empty(t, tree.Entries)
	})

	t.Run("should fail the whole listing when one entry is malformed", func(t *testing.T) {
		t.Parallel()

		// given
		raw := []byte(`{
			"sha": "s",
			"url": "u",
			"tree": [
				{"path":"ok.txt","sha":"s1","type":"blob","mode":"100644"},
				{"path":"bad.txt","sha":"s2","type":"blob","mode":"777777"}
			]
		}`)

		// when
		var tree domain.Tree
		err := json.Unmarshal(raw, &tree)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tree[1]")
		assert.Contains(t, err.Error(), "777777")
	})

	t.Run("should fail when the tree list itself is absent", func(t *testing.T) {
		t.Parallel()

		// given
		raw := []byte(`{"sha":"s","url":"u"}`)

		// when
		var tree domain.Tree
		err := json.Unmarshal(raw, &tree)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Tree")
		assert.Contains(t, err.Error(), "tree")
	})
}
