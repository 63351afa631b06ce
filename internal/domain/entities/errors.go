package entities

import "errors"

// Structural errors raised while reading the pull request event.
var (
	ErrMissingPullRequest = errors.New("event-json does not have a pull_request property")
	ErrNotSingleFile      = errors.New("pull request must change exactly one file")
	ErrWrongFile          = errors.New("pull request changed the wrong file")
	ErrMalformedEvent     = errors.New("event-json is malformed")
)

// Extraction errors raised while diffing two whitelist revisions.
var (
	ErrLineRemoved    = errors.New("removing a line is not permitted")
	ErrNotSingleLine  = errors.New("must change exactly one line in the file")
	ErrMalformedEntry = errors.New("malformed whitelist entry")
)

// Identity and registry errors.
var (
	ErrInvalidIdentity       = errors.New("invalid package identity")
	ErrPackageNotFound       = errors.New("package not found")
	ErrManifestFetch         = errors.New("error fetching manifest")
	ErrMissingRepository     = errors.New("missing repository")
	ErrRepositoryMissingType = errors.New("repository missing type")
	ErrWrongRepositoryType   = errors.New("wrong repository type")
	ErrMissingRepositoryURL  = errors.New("missing repository url")
	ErrManifestMismatch      = errors.New("registry manifest does not match the requested package")
)

// Source audit errors.
var (
	ErrCloneFailed        = errors.New("failed to clone repository")
	ErrCommandFailed      = errors.New("external command failed")
	ErrVerificationFailed = errors.New("verification failed")
	ErrExportsUnavailable = errors.New("package exports cannot be inspected")
)
