package entities

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	logger "github.com/sirupsen/logrus"
)

const whitelistSeparator = ","

// WhitelistEntry is one `identifier,version` line of the whitelist file.
type WhitelistEntry struct {
	Identifier string
	Version    string
}

func (e WhitelistEntry) String() string {
	return e.Identifier + whitelistSeparator + e.Version
}

// Tag returns the git tag a release of this entry is expected to be published under.
func (e WhitelistEntry) Tag() string {
	return "v" + e.Version
}

// DiffKind classifies a run of lines in a DiffResult.
type DiffKind int

const (
	DiffUnchanged DiffKind = iota
	DiffAdded
	DiffRemoved
)

func (k DiffKind) String() string {
	switch k {
	case DiffAdded:
		return "added"
	case DiffRemoved:
		return "removed"
	default:
		return "unchanged"
	}
}

// DiffRun is a contiguous block of lines sharing the same DiffKind.
type DiffRun struct {
	Kind  DiffKind
	Lines []string
}

// DiffResult is a line-level comparison of two whitelist snapshots in original line order.
type DiffResult []DiffRun

// SplitWhitelist splits raw whitelist content into lines, tolerating CRLF endings
// and dropping the single empty line left behind by a final newline.
func SplitWhitelist(content string) []string {
	lines := strings.Split(content, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// ParseWhitelistEntry parses a single `identifier,version` line. Fields after the
// second one are ignored.
func ParseWhitelistEntry(line string) (WhitelistEntry, error) {
	fields := strings.Split(line, whitelistSeparator)
	if len(fields) < 2 { //nolint:mnd // identifier + version
		return WhitelistEntry{}, fmt.Errorf("%w: %q is not `identifier,version`", ErrMalformedEntry, line)
	}
	if len(fields) > 2 { //nolint:mnd // identifier + version
		logger.Warnf("Whitelist line %q has %d fields, ignoring everything after the version", line, len(fields))
	}

	entry := WhitelistEntry{Identifier: fields[0], Version: fields[1]}
	if entry.Identifier == "" || entry.Version == "" {
		return WhitelistEntry{}, fmt.Errorf("%w: %q has an empty identifier or version", ErrMalformedEntry, line)
	}
	return entry, nil
}

// DiffWhitelist computes a Myers diff over whole lines.
func DiffWhitelist(oldLines, newLines []string) DiffResult {
	dmp := diffmatchpatch.New()
	oldChars, newChars, lineArray := dmp.DiffLinesToChars(joinLines(oldLines), joinLines(newLines))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(oldChars, newChars, false), lineArray)

	result := make(DiffResult, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		run := DiffRun{Lines: strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n")}
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			run.Kind = DiffAdded
		case diffmatchpatch.DiffDelete:
			run.Kind = DiffRemoved
		case diffmatchpatch.DiffEqual:
			run.Kind = DiffUnchanged
		}
		result = append(result, run)
	}
	return result
}

// ExtractPackages returns the single entry added between two revisions of the
// whitelist file. Any removed line fails the extraction, as does adding zero or
// more than one line.
func ExtractPackages(oldContent, newContent string) ([]WhitelistEntry, error) {
	diff := DiffWhitelist(SplitWhitelist(oldContent), SplitWhitelist(newContent))

	for _, run := range diff {
		if run.Kind == DiffRemoved {
			return nil, fmt.Errorf("%w: %q", ErrLineRemoved, strings.Join(run.Lines, "\n"))
		}
	}

	var packages []WhitelistEntry
	for _, run := range diff {
		if run.Kind != DiffAdded {
			continue
		}
		for _, line := range run.Lines {
			entry, err := ParseWhitelistEntry(line)
			if err != nil {
				return nil, err
			}
			packages = append(packages, entry)
		}
	}

	if len(packages) != 1 {
		return nil, fmt.Errorf("%w, found %d added lines", ErrNotSingleLine, len(packages))
	}
	return packages, nil
}

func joinLines(lines []string) string {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
