package entities

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const (
	maxPackageNameLength = 214
	specialCharacters    = "~'!()*"
)

var (
	blacklistedNames = []string{"node_modules", "favicon.ico"}

	// Node.js core modules cannot be published as new packages.
	builtinModules = []string{
		"assert", "async_hooks", "buffer", "child_process", "cluster", "console", "constants",
		"crypto", "dgram", "diagnostics_channel", "dns", "domain", "events", "fs", "http",
		"http2", "https", "inspector", "module", "net", "os", "path", "perf_hooks", "process",
		"punycode", "querystring", "readline", "repl", "stream", "string_decoder", "sys",
		"timers", "tls", "trace_events", "tty", "url", "util", "v8", "vm", "wasi",
		"worker_threads", "zlib",
	}

	scopedPackagePattern = regexp.MustCompile(`^@([^/]+)/([^/]+)$`)
)

// IdentityError lists every rule an identifier/version pair violates.
type IdentityError struct {
	Entry      WhitelistEntry
	Violations []string
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidIdentity, e.Entry.String(), strings.Join(e.Violations, "; "))
}

func (e *IdentityError) Unwrap() error { return ErrInvalidIdentity }

// Validate checks the identifier against the npm package-name rules and the
// version against semantic versioning. All name violations are reported together
// with at most one version error.
func (e WhitelistEntry) Validate() error {
	violations := ValidatePackageName(e.Identifier)
	if err := ValidateVersion(e.Version); err != nil {
		violations = append(violations, err.Error())
	}
	if len(violations) > 0 {
		return &IdentityError{Entry: e, Violations: violations}
	}
	return nil
}

// ValidatePackageName returns the npm naming rules the name breaks, or nil.
func ValidatePackageName(name string) []string {
	if name == "" {
		return []string{"name length must be greater than zero"}
	}

	var violations []string
	lower := strings.ToLower(name)

	if strings.HasPrefix(name, ".") {
		violations = append(violations, "name cannot start with a period")
	}
	if strings.HasPrefix(name, "_") {
		violations = append(violations, "name cannot start with an underscore")
	}
	if strings.TrimSpace(name) != name {
		violations = append(violations, "name cannot contain leading or trailing spaces")
	}
	if slices.Contains(blacklistedNames, lower) {
		violations = append(violations, fmt.Sprintf("%s is a blacklisted name", lower))
	}
	if slices.Contains(builtinModules, lower) {
		violations = append(violations, fmt.Sprintf("%s is a core module name", lower))
	}
	if len(name) > maxPackageNameLength {
		violations = append(violations,
			fmt.Sprintf("name can no longer contain more than %d characters", maxPackageNameLength))
	}
	if lower != name {
		violations = append(violations, "name can no longer contain capital letters")
	}

	segments := strings.Split(name, "/")
	if strings.ContainsAny(segments[len(segments)-1], specialCharacters) {
		violations = append(violations,
			fmt.Sprintf("name can no longer contain special characters (%q)", specialCharacters))
	}

	if !isURLFriendly(name) && !isURLFriendlyScoped(name) {
		violations = append(violations, "name can only contain URL-friendly characters")
	}

	return violations
}

// ValidateVersion requires a strict MAJOR.MINOR.PATCH semantic version with
// optional pre-release and build metadata.
func ValidateVersion(version string) error {
	if _, err := semver.StrictNewVersion(version); err != nil {
		return fmt.Errorf("invalid version %q: %w", version, err)
	}
	return nil
}

// isURLFriendly reports whether encodeURIComponent would leave the value unchanged.
func isURLFriendly(value string) bool {
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.IndexByte("-_.!~*'()", c) >= 0:
		default:
			return false
		}
	}
	return true
}

func isURLFriendlyScoped(name string) bool {
	matches := scopedPackagePattern.FindStringSubmatch(name)
	if matches == nil {
		return false
	}
	return isURLFriendly(matches[1]) && isURLFriendly(matches[2])
}
