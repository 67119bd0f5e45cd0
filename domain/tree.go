package domain

import (
	"encoding/json"
	"fmt"
)

// GitTree is one entry within a tree listing. URL and Size are only sent by
// the API for blob entries in practice, but both decode as optional
// unconditionally.
type GitTree struct {
	Path string      `json:"path"`
	SHA  string      `json:"sha"`
	Type GitTreeType `json:"type"`
	Mode GitMode     `json:"mode"`
	URL  *string     `json:"url,omitempty"`
	Size *int64      `json:"size,omitempty"`
}

func (g *GitTree) UnmarshalJSON(data []byte) error {
	var raw struct {
		Path *string `json:"path"`
		SHA  *string `json:"sha"`
		Type *string `json:"type"`
		Mode *string `json:"mode"`
		URL  *string `json:"url"`
		Size *int64  `json:"size"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return &DecodeError{Type: "GitTree", Err: err}
	}
	switch {
	case raw.Path == nil:
		return missingField("GitTree", "path")
	case raw.SHA == nil:
		return missingField("GitTree", "sha")
	case raw.Type == nil:
		return missingField("GitTree", "type")
	case raw.Mode == nil:
		return missingField("GitTree", "mode")
	}

	entryType, err := ParseGitTreeType(*raw.Type)
	if err != nil {
		return &DecodeError{Type: "GitTree", Field: "type", Err: err}
	}
	mode, parseErr := ParseGitMode(*raw.Mode)
	if parseErr != nil {
		return &DecodeError{Type: "GitTree", Field: "mode", Err: parseErr}
	}

	*g = GitTree{
		Path: *raw.Path,
		SHA:  *raw.SHA,
		Type: entryType,
		Mode: mode,
		URL:  raw.URL,
		Size: raw.Size,
	}
	return nil
}

// Tree is a full tree listing. Entries keep the API's order exactly.
// Truncated set to true means the listing was cut off server-side and is
// incomplete.
type Tree struct {
	SHA       string    `json:"sha"`
	URL       string    `json:"url"`
	Entries   []GitTree `json:"tree"`
	Truncated *bool     `json:"truncated,omitempty"`
}

func (t *Tree) UnmarshalJSON(data []byte) error {
	var raw struct {
		SHA       *string           `json:"sha"`
		URL       *string           `json:"url"`
		Entries   []json.RawMessage `json:"tree"`
		Truncated *bool             `json:"truncated"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return &DecodeError{Type: "Tree", Err: err}
	}
	switch {
	case raw.SHA == nil:
		return missingField("Tree", "sha")
	case raw.URL == nil:
		return missingField("Tree", "url")
	case raw.Entries == nil:
		return missingField("Tree", "tree")
	}

	entries := make([]GitTree, len(raw.Entries))
	for i, rawEntry := range raw.Entries {
		if err := json.Unmarshal(rawEntry, &entries[i]); err != nil {
			// One bad element fails the whole listing, no partial results.
			return &DecodeError{
				Type:  "Tree",
				Field: fmt.Sprintf("tree[%d]", i),
				Err:   err,
			}
		}
	}

	*t = Tree{SHA: *raw.SHA, URL: *raw.URL, Entries: entries, Truncated: raw.Truncated}
	return nil
}
