package process

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"syscall"

	logger "github.com/sirupsen/logrus"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
	"github.com/dhis2designlab/scp-cli/internal/domain/repositories"
)

// ExecProcessRepository runs commands as child processes and captures their output.
type ExecProcessRepository struct{}

// NewExecProcessRepository creates a new ExecProcessRepository.
func NewExecProcessRepository() repositories.ProcessRepository {
	return &ExecProcessRepository{}
}

func (r *ExecProcessRepository) Run(ctx context.Context, dir, name string, args ...string) entities.ProcessResult {
	result := entities.ProcessResult{Command: append([]string{name}, args...)}
	logger.Debugf("Running %v in %s", result.Command, dir)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	if err == nil {
		return result
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		result.SpawnErr = err
		return result
	}

	result.ExitCode = exitErr.ExitCode()
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		result.Signal = status.Signal().String()
	}
	return result
}
