package repositories

import "context"

// SourceRepository fetches the source tree of a package.
type SourceRepository interface {
	// Clone makes a depth 1 clone of url at tag into dir.
	Clone(ctx context.Context, url, tag, dir string) error
}
