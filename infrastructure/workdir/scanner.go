package workdir

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitdata/domain"
)

// Scanner walks a local working directory and expresses its files as
// tree-creation entries, either inline or by locally computed blob shas.
// Directories are not emitted: the trees endpoint derives intermediate trees
// from entry paths.
type Scanner struct {
	modes map[string]domain.BlobMode // glob pattern -> forced mode
}

// NewScanner creates a scanner with per-pattern mode overrides (may be nil).
func NewScanner(overrides map[string]domain.BlobMode) *Scanner {
	return &Scanner{modes: overrides}
}

// ScanOptions holds per-scan options.
type ScanOptions struct {
	// Inline uploads file content inside the entries instead of referencing
	// computed blob shas. Symlinks cannot be represented inline and are
	// skipped with a warning.
	Inline bool
}

// Scan walks root (skipping .git) and returns one entry per file, in lexical
// path order.
func (s *Scanner) Scan(root string, opts ScanOptions) ([]domain.CreateGitTree, error) {
	var entries []domain.CreateGitTree

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		relPath = filepath.ToSlash(relPath)

		if d.Type()&fs.ModeSymlink != 0 {
			entry, linkErr := s.scanSymlink(path, relPath, opts)
			if linkErr != nil {
				return linkErr
			}
			if entry != nil {
				entries = append(entries, entry)
			}
			return nil
		}

		entry, fileErr := s.scanFile(path, relPath, opts)
		if fileErr != nil {
			return fileErr
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %q: %w", root, err)
	}

	logger.Debugf("Scanned %d entries under %q", len(entries), root)
	return entries, nil
}

func (s *Scanner) scanFile(path, relPath string, opts ScanOptions) (domain.CreateGitTree, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", relPath, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %q: %w", relPath, err)
	}

	mode, err := s.blobMode(relPath, info.Mode())
	if err != nil {
		return nil, err
	}

	if opts.Inline {
		return domain.CreateGitTreeBlob{
			Path:    relPath,
			Mode:    mode,
			Content: string(content),
		}, nil
	}

	sha := plumbing.ComputeHash(plumbing.BlobObject, content).String()
	return domain.CreateGitTreeSha{
		Path: relPath,
		SHA:  &sha,
		Type: domain.TypeBlob,
		Mode: mode.GitMode(),
	}, nil
}

func (s *Scanner) scanSymlink(path, relPath string, opts ScanOptions) (domain.CreateGitTree, error) {
	if opts.Inline {
		// Inline entries only carry file or executable modes.
		logger.Warnf("Skipping symlink %q: links cannot be uploaded inline", relPath)
		return nil, nil
	}

	target, err := os.Readlink(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read link %q: %w", relPath, err)
	}

	// A symlink's blob is its target path.
	sha := plumbing.ComputeHash(plumbing.BlobObject, []byte(target)).String()
	return domain.CreateGitTreeSha{
		Path: relPath,
		SHA:  &sha,
		Type: domain.TypeBlob,
		Mode: domain.ModeSymlink,
	}, nil
}

// blobMode classifies an OS file mode into the two uploadable Git modes,
// honoring configured per-pattern overrides first.
func (s *Scanner) blobMode(relPath string, osMode os.FileMode) (domain.BlobMode, error) {
	for pattern, mode := range s.modes {
		if matched, _ := filepath.Match(pattern, filepath.Base(relPath)); matched {
			return mode, nil
		}
		if matched, _ := filepath.Match(pattern, relPath); matched {
			return mode, nil
		}
	}

	gitMode, err := filemode.NewFromOSFileMode(osMode)
	if err != nil {
		return "", fmt.Errorf("failed to classify mode of %q: %w", relPath, err)
	}

	switch gitMode {
	case filemode.Executable:
		return domain.BlobModeExecutable, nil
	case filemode.Regular:
		return domain.BlobModeFile, nil
	default:
		return "", fmt.Errorf("file %q has unsupported mode %s", relPath, gitMode)
	}
}
