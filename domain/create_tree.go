package domain

import "encoding/json"

// CreateGitTree is one entry in a tree-creation request. The upstream API
// accepts two structurally different entry shapes, so this is a sealed sum
// type: CreateGitTreeSha points at an existing object, CreateGitTreeBlob
// uploads inline content. Holding a sha and content at once is
// unrepresentable.
type CreateGitTree interface {
	json.Marshaler
	createGitTree()
}

// CreateGitTreeSha references an existing Git object by sha. A nil SHA
// encodes as null, which the upstream API reads as "delete this path"; that
// semantics is not verified further here.
type CreateGitTreeSha struct {
	Path string
	SHA  *string
	Type GitTreeType
	Mode GitMode
}

func (CreateGitTreeSha) createGitTree() {}

func (e CreateGitTreeSha) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Path string      `json:"path"`
		SHA  *string     `json:"sha"`
		Type GitTreeType `json:"type"`
		Mode GitMode     `json:"mode"`
	}{e.Path, e.SHA, e.Type, e.Mode})
}

// CreateGitTreeBlob uploads inline blob content at a path. Its type encodes
// as "blob" unconditionally, and its mode is restricted to the two modes a
// content upload can have.
type CreateGitTreeBlob struct {
	Path    string
	Mode    BlobMode
	Content string
}

func (CreateGitTreeBlob) createGitTree() {}

func (e CreateGitTreeBlob) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Path    string      `json:"path"`
		Type    GitTreeType `json:"type"`
		Mode    GitMode     `json:"mode"`
		Content string      `json:"content"`
	}{e.Path, TypeBlob, e.Mode.GitMode(), e.Content})
}

// FromGitTree derives a by-reference creation entry from an existing listing
// entry, re-proposing it unchanged: path, type and mode are copied and the
// entry's sha is wrapped as present.
func FromGitTree(g GitTree) CreateGitTreeSha {
	sha := g.SHA
	return CreateGitTreeSha{Path: g.Path, SHA: &sha, Type: g.Type, Mode: g.Mode}
}

// CreateTree is the request body for POST /repos/:owner/:repo/git/trees.
// Entry order defines the resulting tree's order. A nil BaseTree encodes as
// null and means "build from an empty base" — the server then treats every
// existing path not re-listed here as deleted, so callers almost always want
// to set it.
type CreateTree struct {
	Entries  []CreateGitTree
	BaseTree *string
}

func (t CreateTree) MarshalJSON() ([]byte, error) {
	entries := t.Entries
	if entries == nil {
		entries = []CreateGitTree{}
	}
	return json.Marshal(struct {
		Tree     []CreateGitTree `json:"tree"`
		BaseTree *string         `json:"base_tree"`
	}{entries, t.BaseTree})
}
