package gitclone

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
	"github.com/dhis2designlab/scp-cli/internal/domain/repositories"
)

// SourceRepository clones package sources in-process with go-git.
type SourceRepository struct{}

// NewSourceRepository creates a new SourceRepository.
func NewSourceRepository() repositories.SourceRepository {
	return &SourceRepository{}
}

// Clone is the equivalent of `git clone --depth 1 --branch <tag> <url> <dir>`.
func (r *SourceRepository) Clone(ctx context.Context, url, tag, dir string) error {
	logger.Debugf("git clone --depth 1 --branch %s %s %s", tag, url, dir)

	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:           url,
		ReferenceName: plumbing.NewTagReferenceName(tag),
		SingleBranch:  true,
		Depth:         1,
		Tags:          git.NoTags,
	})
	if err != nil {
		return fmt.Errorf("%w: git clone --depth 1 --branch %s %s %s: %w", entities.ErrCloneFailed, tag, url, dir, err)
	}
	return nil
}
