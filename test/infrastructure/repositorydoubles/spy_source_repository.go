//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"os"
	"path/filepath"

	"github.com/dhis2designlab/scp-cli/internal/domain/repositories"
)

// CloneCall records one SourceRepository.Clone invocation.
type CloneCall struct {
	URL          string
	Tag          string
	Dir          string
	DirWasAbsent bool
}

// SpySourceRepository implements repositories.SourceRepository. A successful
// clone creates dir and writes PackageJSON into it when set.
type SpySourceRepository struct {
	PackageJSON []byte
	CloneErr    error
	Clones      []CloneCall
}

var _ repositories.SourceRepository = (*SpySourceRepository)(nil)

func (s *SpySourceRepository) Clone(_ context.Context, url, tag, dir string) error {
	_, statErr := os.Stat(dir)
	s.Clones = append(s.Clones, CloneCall{URL: url, Tag: tag, Dir: dir, DirWasAbsent: os.IsNotExist(statErr)})
	if s.CloneErr != nil {
		return s.CloneErr
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	if s.PackageJSON != nil {
		return os.WriteFile(filepath.Join(dir, "package.json"), s.PackageJSON, 0o600)
	}
	return nil
}
