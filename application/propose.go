package application

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitdata/domain"
)

// ProposeService turns a fetched tree listing into a tree-creation request
// that re-proposes every entry unchanged, by sha. Callers typically edit the
// resulting request (swap entries, add inline content) before submitting it.
type ProposeService struct{}

// NewProposeService creates a new service.
func NewProposeService() *ProposeService {
	return &ProposeService{}
}

// ProposeOptions holds per-call options.
type ProposeOptions struct {
	// BaseTree sets base_tree explicitly. Takes precedence over UseListingAsBase.
	BaseTree string
	// UseListingAsBase uses the listing's own sha as base_tree, so the request
	// only adds on top of what was listed.
	UseListingAsBase bool
}

// Propose derives a CreateTree from a tree listing, preserving entry order.
// Without a base tree the server treats every existing path not re-listed as
// deleted, so the absence is logged loudly rather than silently passed on.
func (s *ProposeService) Propose(tree domain.Tree, opts ProposeOptions) domain.CreateTree {
	if tree.Truncated != nil && *tree.Truncated {
		logger.Warnf(
			"Tree listing %q is truncated server-side; the proposal will be incomplete",
			tree.SHA,
		)
	}

	entries := make([]domain.CreateGitTree, 0, len(tree.Entries))
	for _, entry := range tree.Entries {
		entries = append(entries, domain.FromGitTree(entry))
	}

	request := domain.CreateTree{Entries: entries}
	switch {
	case opts.BaseTree != "":
		base := opts.BaseTree
		request.BaseTree = &base
	case opts.UseListingAsBase:
		base := tree.SHA
		request.BaseTree = &base
	default:
		logger.Warnf(
			"No base tree set; submitting this request deletes every path not listed in it",
		)
	}

	logger.Debugf("Proposed %d entries from tree %q", len(entries), tree.SHA)
	return request
}
