package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/temirov/licenselock/internal/execshell"
	"github.com/temirov/licenselock/internal/shared"
)

const (
	gitRevParseSubcommandConstant         = "rev-parse"
	gitIsInsideWorkTreeFlagConstant       = "--is-inside-work-tree"
	gitShowCdupFlagConstant               = "--show-cdup"
	gitLSFilesSubcommandConstant          = "ls-files"
	gitStageFlagConstant                  = "--stage"
	gitNullTerminatedFlagConstant         = "-z"
	gitTrueOutputConstant                 = "true"
	gitlinkModeConstant                   = "160000"
	indexRecordSeparatorConstant          = "\x00"
	indexPathSeparatorConstant            = "\t"
	outputLineSeparatorConstant           = "\n"
	gitExecutorNotConfiguredMessage       = "git executor not configured"
	repositoryProbeErrorTemplate          = "unable to inspect repository %s: %w"
	submoduleListErrorTemplate            = "unable to list submodules of %s: %w"
	malformedIndexRecordErrorTemplate     = "malformed index record %q"
	indexRecordMetadataFieldCountConstant = 3
)

// ErrGitExecutorNotConfigured indicates the inspector was constructed without a git executor.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorNotConfiguredMessage)

// SubmoduleInspector implements shared.SubmoduleInspector by invoking git.
type SubmoduleInspector struct {
	executor shared.GitExecutor
}

// NewSubmoduleInspector constructs a SubmoduleInspector around the provided executor.
func NewSubmoduleInspector(executor shared.GitExecutor) (*SubmoduleInspector, error) {
	if executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &SubmoduleInspector{executor: executor}, nil
}

// IsRepository reports whether repositoryPath is the top level of a git work tree.
// Subdirectories of a work tree, bare repositories, and missing directories are not repositories.
func (inspector *SubmoduleInspector) IsRepository(executionContext context.Context, repositoryPath string) (bool, error) {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitIsInsideWorkTreeFlagConstant, gitShowCdupFlagConstant},
		WorkingDirectory: repositoryPath,
	}

	executionResult, executionError := inspector.executor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		var failedError execshell.CommandFailedError
		if errors.As(executionError, &failedError) {
			return false, nil
		}
		if errors.Is(executionError, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf(repositoryProbeErrorTemplate, repositoryPath, executionError)
	}

	outputLines := strings.Split(strings.TrimRight(executionResult.StandardOutput, outputLineSeparatorConstant), outputLineSeparatorConstant)
	if strings.TrimSpace(outputLines[0]) != gitTrueOutputConstant {
		return false, nil
	}
	if len(outputLines) > 1 && len(strings.TrimSpace(outputLines[1])) > 0 {
		return false, nil
	}
	return true, nil
}

// ListSubmodulePaths returns the paths of gitlink entries in the repository index, in index order.
func (inspector *SubmoduleInspector) ListSubmodulePaths(executionContext context.Context, repositoryPath string) ([]string, error) {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{gitLSFilesSubcommandConstant, gitStageFlagConstant, gitNullTerminatedFlagConstant},
		WorkingDirectory: repositoryPath,
	}

	executionResult, executionError := inspector.executor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		return nil, fmt.Errorf(submoduleListErrorTemplate, repositoryPath, executionError)
	}

	return parseGitlinkPaths(executionResult.StandardOutput)
}

// parseGitlinkPaths extracts gitlink paths from `git ls-files --stage -z` output.
// Unmerged paths appear once per stage and are reported once.
func parseGitlinkPaths(output string) ([]string, error) {
	seenPaths := make(map[string]struct{})
	submodulePaths := make([]string, 0)

	for _, indexRecord := range strings.Split(output, indexRecordSeparatorConstant) {
		if len(indexRecord) == 0 {
			continue
		}

		metadata, recordPath, separatorFound := strings.Cut(indexRecord, indexPathSeparatorConstant)
		metadataFields := strings.Fields(metadata)
		if !separatorFound || len(metadataFields) != indexRecordMetadataFieldCountConstant || len(recordPath) == 0 {
			return nil, fmt.Errorf(malformedIndexRecordErrorTemplate, indexRecord)
		}

		if metadataFields[0] != gitlinkModeConstant {
			continue
		}
		if _, alreadySeen := seenPaths[recordPath]; alreadySeen {
			continue
		}
		seenPaths[recordPath] = struct{}{}
		submodulePaths = append(submodulePaths, recordPath)
	}

	return submodulePaths, nil
}
