//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
	"github.com/dhis2designlab/scp-cli/internal/domain/repositories"
)

// ProcessCall records one ProcessRepository.Run invocation.
type ProcessCall struct {
	Dir     string
	Command string
}

// SpyProcessRepository implements repositories.ProcessRepository. Results are
// keyed by the space-joined command line; unknown commands succeed.
type SpyProcessRepository struct {
	Results map[string]entities.ProcessResult
	Calls   []ProcessCall
}

var _ repositories.ProcessRepository = (*SpyProcessRepository)(nil)

func (s *SpyProcessRepository) Run(_ context.Context, dir, name string, args ...string) entities.ProcessResult {
	argv := append([]string{name}, args...)
	command := strings.Join(argv, " ")
	s.Calls = append(s.Calls, ProcessCall{Dir: dir, Command: command})

	result, ok := s.Results[command]
	if !ok {
		result = entities.ProcessResult{}
	}
	result.Command = argv
	return result
}

// Commands returns the recorded command lines in call order.
func (s *SpyProcessRepository) Commands() []string {
	commands := make([]string, 0, len(s.Calls))
	for _, call := range s.Calls {
		commands = append(commands, call.Command)
	}
	return commands
}
