package domain

import "encoding/json"

// Encoding selects how blob content is interpreted when uploading it.
type Encoding string

const (
	EncodingBase64 Encoding = "base64"
	EncodingUTF8   Encoding = "utf-8"
)

// ParseEncoding matches a wire literal against the known encodings.
func ParseEncoding(raw string) (Encoding, error) {
	switch Encoding(raw) {
	case EncodingBase64, EncodingUTF8:
		return Encoding(raw), nil
	default:
		return "", &DecodeError{Type: "Encoding", Value: raw}
	}
}

// GitTreeType is the kind of Git object a tree entry points at.
type GitTreeType string

const (
	TypeBlob   GitTreeType = "blob"
	TypeCommit GitTreeType = "commit"
	TypeTree   GitTreeType = "tree"
)

// ParseGitTreeType matches a wire literal against the known object kinds.
func ParseGitTreeType(raw string) (GitTreeType, error) {
	switch GitTreeType(raw) {
	case TypeBlob, TypeCommit, TypeTree:
		return GitTreeType(raw), nil
	default:
		return "", &DecodeError{Type: "GitTreeType", Value: raw}
	}
}

func (t *GitTreeType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return &DecodeError{Type: "GitTreeType", Err: err}
	}
	parsed, err := ParseGitTreeType(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// GitMode is a Git file-mode string, fixed six-character octal notation.
type GitMode string

const (
	ModeExecutable   GitMode = "100755"
	ModeFile         GitMode = "100644"
	ModeSubdirectory GitMode = "040000"
	ModeSubmodule    GitMode = "160000"
	ModeSymlink      GitMode = "120000"
)

// ParseGitMode matches a wire literal against the known file modes.
func ParseGitMode(raw string) (GitMode, error) {
	switch GitMode(raw) {
	case ModeExecutable, ModeFile, ModeSubdirectory, ModeSubmodule, ModeSymlink:
		return GitMode(raw), nil
	default:
		return "", &DecodeError{Type: "GitMode", Value: raw}
	}
}

func (m *GitMode) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return &DecodeError{Type: "GitMode", Err: err}
	}
	parsed, err := ParseGitMode(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// BlobMode is the subset of Git modes valid for a tree entry that carries
// inline blob content. Keeping it a separate type makes symlink or submodule
// content uploads unrepresentable instead of a runtime check.
type BlobMode string

const (
	BlobModeFile       BlobMode = BlobMode(ModeFile)
	BlobModeExecutable BlobMode = BlobMode(ModeExecutable)
)

// GitMode widens a BlobMode to the full mode enumeration for encoding.
func (m BlobMode) GitMode() GitMode {
	return GitMode(m)
}

// ParseBlobMode matches a wire literal against the two content-upload modes.
func ParseBlobMode(raw string) (BlobMode, error) {
	switch BlobMode(raw) {
	case BlobModeFile, BlobModeExecutable:
		return BlobMode(raw), nil
	default:
		return "", &DecodeError{Type: "BlobMode", Value: raw}
	}
}
