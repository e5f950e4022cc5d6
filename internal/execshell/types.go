package execshell

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	commandFailedErrorTemplateConstant    = "%s exited with code %d%s"
	commandExecutionErrorTemplateConstant = "%s could not be executed: %v"
	loggerNotConfiguredMessageConstant    = "logger not configured"
	runnerNotConfiguredMessageConstant    = "command runner not configured"
	commandDescriptionSeparatorConstant   = " "
)

// CommandName identifies an executable supported by the executor.
type CommandName string

// CommandGit invokes the git executable found on PATH.
const CommandGit CommandName = CommandName("git")

// CommandDetails describes the arguments and environment of a single invocation.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
}

// ShellCommand pairs an executable with its invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable output of an executed command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandRunner executes shell commands.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

var (
	// ErrLoggerNotConfigured indicates a ShellExecutor was constructed without a logger.
	ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)
	// ErrCommandRunnerNotConfigured indicates a ShellExecutor was constructed without a runner.
	ErrCommandRunnerNotConfigured = errors.New(runnerNotConfiguredMessageConstant)
)

// CommandFailedError reports a command that ran but exited with a non-zero status.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the failed command.
func (failedError CommandFailedError) Error() string {
	standardErrorSuffix := ""
	if trimmedStandardError := strings.TrimSpace(failedError.Result.StandardError); len(trimmedStandardError) > 0 {
		standardErrorSuffix = ": " + trimmedStandardError
	}
	return fmt.Sprintf(commandFailedErrorTemplateConstant, describeCommand(failedError.Command), failedError.Result.ExitCode, standardErrorSuffix)
}

// CommandExecutionError reports a command that could not be started or awaited.
type CommandExecutionError struct {
	Command ShellCommand
	Cause   error
}

// Error describes the execution failure.
func (executionError CommandExecutionError) Error() string {
	return fmt.Sprintf(commandExecutionErrorTemplateConstant, describeCommand(executionError.Command), executionError.Cause)
}

// Unwrap exposes the underlying cause.
func (executionError CommandExecutionError) Unwrap() error {
	return executionError.Cause
}

func describeCommand(command ShellCommand) string {
	commandParts := append([]string{string(command.Name)}, command.Details.Arguments...)
	return strings.Join(commandParts, commandDescriptionSeparatorConstant)
}
