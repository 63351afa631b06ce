//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"encoding/json"
	"strconv"

	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// PullRequestEventBuilder helps create pull_request webhook payloads with a fluent interface.
type PullRequestEventBuilder struct {
	*testkit.BaseBuilder
	number       int
	changedFiles int
	owner        string
	repo         string
	baseSHA      string
	headSHA      string
	omitPR       bool
}

// NewPullRequestEventBuilder creates a new event builder with sensible defaults.
func NewPullRequestEventBuilder() *PullRequestEventBuilder {
	b := &PullRequestEventBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.defaults()
	return b
}

func (b *PullRequestEventBuilder) defaults() {
	b.number = 7
	b.changedFiles = 1
	b.owner = "dhis2designlab"
	b.repo = "scp-whitelist"
	b.baseSHA = "1111111111111111111111111111111111111111"
	b.headSHA = "2222222222222222222222222222222222222222"
	b.omitPR = false
}

// WithNumber sets the pull request number.
func (b *PullRequestEventBuilder) WithNumber(number int) *PullRequestEventBuilder {
	b.number = number
	return b
}

// WithChangedFiles sets the changed_files count.
func (b *PullRequestEventBuilder) WithChangedFiles(count int) *PullRequestEventBuilder {
	b.changedFiles = count
	return b
}

// WithRepository sets the owner and name of the base and head repository.
func (b *PullRequestEventBuilder) WithRepository(owner, repo string) *PullRequestEventBuilder {
	b.owner = owner
	b.repo = repo
	return b
}

// WithSHAs sets the base and head commit SHAs.
func (b *PullRequestEventBuilder) WithSHAs(base, head string) *PullRequestEventBuilder {
	b.baseSHA = base
	b.headSHA = head
	return b
}

// WithoutPullRequest builds an event without the pull_request property.
func (b *PullRequestEventBuilder) WithoutPullRequest() *PullRequestEventBuilder {
	b.omitPR = true
	return b
}

// Build creates the event (satisfies testkit.Builder interface).
func (b *PullRequestEventBuilder) Build() interface{} {
	return b.BuildBytes()
}

// BuildPullRequest creates the pull_request object alone.
func (b *PullRequestEventBuilder) BuildPullRequest() map[string]any {
	return map[string]any{
		"number":        b.number,
		"url":           "https://api.github.com/repos/" + b.owner + "/" + b.repo + "/pulls/" + strconv.Itoa(b.number),
		"changed_files": b.changedFiles,
		"diff_url":      "https://github.com/" + b.owner + "/" + b.repo + "/pull/" + strconv.Itoa(b.number) + ".diff",
		"base":          b.revision(b.baseSHA),
		"head":          b.revision(b.headSHA),
	}
}

// BuildBytes creates the event encoded as JSON.
func (b *PullRequestEventBuilder) BuildBytes() []byte {
	event := map[string]any{"action": "opened"}
	if !b.omitPR {
		event["pull_request"] = b.BuildPullRequest()
	}
	data, err := json.Marshal(event)
	if err != nil {
		panic(err)
	}
	return data
}

func (b *PullRequestEventBuilder) revision(sha string) map[string]any {
	return map[string]any{
		"sha": sha,
		"repo": map[string]any{
			"name":     b.repo,
			"html_url": "https://github.com/" + b.owner + "/" + b.repo,
			"owner":    map[string]any{"login": b.owner},
		},
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *PullRequestEventBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.defaults()
	return b
}

// Clone creates a deep copy of the PullRequestEventBuilder.
func (b *PullRequestEventBuilder) Clone() testkit.Builder {
	return &PullRequestEventBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		number:       b.number,
		changedFiles: b.changedFiles,
		owner:        b.owner,
		repo:         b.repo,
		baseSHA:      b.baseSHA,
		headSHA:      b.headSHA,
		omitPR:       b.omitPR,
	}
}
