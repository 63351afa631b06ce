package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const pullRequestSchemaID = "inmemory://pull_request.json"

// pullRequestSchema lists the fields the pipeline reads from a pull_request object.
const pullRequestSchema = `{
  "type": "object",
  "required": ["number", "url", "changed_files", "base", "head"],
  "properties": {
    "number": {"type": "integer", "minimum": 1},
    "url": {"type": "string", "minLength": 1},
    "changed_files": {"type": "integer"},
    "base": {"$ref": "#/definitions/revision"},
    "head": {"$ref": "#/definitions/revision"}
  },
  "definitions": {
    "revision": {
      "type": "object",
      "required": ["sha", "repo"],
      "properties": {
        "sha": {"type": "string", "minLength": 1},
        "repo": {
          "type": "object",
          "required": ["name", "owner"],
          "properties": {
            "name": {"type": "string", "minLength": 1},
            "html_url": {"type": "string"},
            "owner": {
              "type": "object",
              "required": ["login"],
              "properties": {"login": {"type": "string", "minLength": 1}}
            }
          }
        }
      }
    }
  }
}`

var compiledPullRequestSchema = jsonschema.MustCompileString(pullRequestSchemaID, pullRequestSchema)

// Revision points at one side of a pull request.
type Revision struct {
	Owner   string
	Repo    string
	SHA     string
	HTMLURL string
}

// FileURL is the raw URL of path at this revision.
func (r Revision) FileURL(path string) string {
	return fmt.Sprintf("%s/raw/%s/%s", strings.TrimSuffix(r.HTMLURL, "/"), r.SHA, path)
}

// PullRequestRef is the request-scoped view of a pull request the pipeline works on.
type PullRequestRef struct {
	Number           int
	ChangedFileCount int
	FilesURL         string
	Base             Revision
	Head             Revision
}

// BaseRevisionURL is the raw URL of path before the pull request.
func (r *PullRequestRef) BaseRevisionURL(path string) string { return r.Base.FileURL(path) }

// HeadFileURL is the raw URL of path as proposed by the pull request.
func (r *PullRequestRef) HeadFileURL(path string) string { return r.Head.FileURL(path) }

// ChangedFile is one entry of a pull request's files listing.
type ChangedFile struct {
	Filename string
	Status   string
	RawURL   string
}

type pullRequestPayload struct {
	Number       int             `json:"number"`
	URL          string          `json:"url"`
	ChangedFiles int             `json:"changed_files"`
	Base         revisionPayload `json:"base"`
	Head         revisionPayload `json:"head"`
}

type revisionPayload struct {
	SHA  string `json:"sha"`
	Repo struct {
		Name    string `json:"name"`
		HTMLURL string `json:"html_url"`
		Owner   struct {
			Login string `json:"login"`
		} `json:"owner"`
	} `json:"repo"`
}

func (p revisionPayload) toRevision() Revision {
	return Revision{
		Owner:   p.Repo.Owner.Login,
		Repo:    p.Repo.Name,
		SHA:     p.SHA,
		HTMLURL: p.Repo.HTMLURL,
	}
}

// DecodePullRequestEvent returns the raw pull_request object of an event payload.
func DecodePullRequestEvent(data []byte) (json.RawMessage, error) {
	var event map[string]json.RawMessage
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}
	pullRequest, ok := event["pull_request"]
	if !ok || bytes.Equal(bytes.TrimSpace(pullRequest), []byte("null")) {
		return nil, ErrMissingPullRequest
	}
	return pullRequest, nil
}

// ParsePullRequest requires a single changed file and the fields the pipeline
// needs, then derives the PullRequestRef.
func ParsePullRequest(raw json.RawMessage) (*PullRequestRef, error) {
	var payload pullRequestPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}
	if payload.ChangedFiles != 1 {
		return nil, fmt.Errorf("%w, changed %d", ErrNotSingleFile, payload.ChangedFiles)
	}
	if err := ValidatePullRequestPayload(raw); err != nil {
		return nil, err
	}

	return &PullRequestRef{
		Number:           payload.Number,
		ChangedFileCount: payload.ChangedFiles,
		FilesURL:         payload.URL + "/files",
		Base:             payload.Base.toRevision(),
		Head:             payload.Head.toRevision(),
	}, nil
}

// ValidatePullRequestPayload checks a pull_request object against the schema.
func ValidatePullRequestPayload(raw json.RawMessage) error {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}
	if err := compiledPullRequestSchema.Validate(value); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}
	return nil
}

// VerifyChangedFile requires the only changed file to be the whitelist file.
func VerifyChangedFile(files []ChangedFile, whitelistFile string) error {
	if len(files) != 1 {
		return fmt.Errorf("%w, the files listing has %d entries", ErrNotSingleFile, len(files))
	}
	if files[0].Filename != whitelistFile {
		return fmt.Errorf("%w: changed file %s instead of %s", ErrWrongFile, files[0].Filename, whitelistFile)
	}
	return nil
}

// ParsePullRequestURL accepts a github.com pull request page URL or its REST API URL.
func ParsePullRequestURL(rawURL string) (string, string, int, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", "", 0, fmt.Errorf("invalid pull request URL %q: %w", rawURL, err)
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) > 0 && segments[0] == "repos" {
		segments = segments[1:]
	}
	if len(segments) != 4 || (segments[2] != "pull" && segments[2] != "pulls") { //nolint:mnd // owner/repo/pull/N
		return "", "", 0, fmt.Errorf("invalid pull request URL %q: expected <owner>/<repo>/pull/<number>", rawURL)
	}

	number, err := strconv.Atoi(segments[3])
	if err != nil || number < 1 {
		return "", "", 0, fmt.Errorf("invalid pull request number in %q", rawURL)
	}
	return segments[0], segments[1], number, nil
}
