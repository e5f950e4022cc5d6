package execshell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

const (
	environmentAssignmentTemplateConstant = "%s=%s"
	gitLocaleVariableNameConstant         = "LC_ALL"
	gitLocaleVariableValueConstant        = "C"
	gitPromptVariableNameConstant         = "GIT_TERMINAL_PROMPT"
	gitPromptVariableValueConstant        = "0"
)

// OSCommandRunner executes commands using the operating system facilities.
type OSCommandRunner struct{}

// NewOSCommandRunner constructs a runner backed by os/exec.
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{}
}

// Run executes the supplied command using os/exec.
//
// Git output is parsed by callers, so the locale is pinned and interactive
// credential prompts are disabled for every invocation.
func (runner *OSCommandRunner) Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	commandArguments := append([]string{}, command.Details.Arguments...)
	executable := exec.CommandContext(executionContext, string(command.Name), commandArguments...)

	if len(command.Details.WorkingDirectory) > 0 {
		executable.Dir = command.Details.WorkingDirectory
	}

	mergedEnvironment := append([]string{}, os.Environ()...)
	mergedEnvironment = append(mergedEnvironment,
		fmt.Sprintf(environmentAssignmentTemplateConstant, gitLocaleVariableNameConstant, gitLocaleVariableValueConstant),
		fmt.Sprintf(environmentAssignmentTemplateConstant, gitPromptVariableNameConstant, gitPromptVariableValueConstant),
	)
	for environmentKey, environmentValue := range command.Details.EnvironmentVariables {
		mergedEnvironment = append(mergedEnvironment, fmt.Sprintf(environmentAssignmentTemplateConstant, environmentKey, environmentValue))
	}
	executable.Env = mergedEnvironment

	var standardOutputBuffer bytes.Buffer
	var standardErrorBuffer bytes.Buffer
	executable.Stdout = &standardOutputBuffer
	executable.Stderr = &standardErrorBuffer

	runError := executable.Run()
	if runError != nil {
		exitError := &exec.ExitError{}
		if errors.As(runError, &exitError) {
			return ExecutionResult{
				StandardOutput: standardOutputBuffer.String(),
				StandardError:  standardErrorBuffer.String(),
				ExitCode:       exitError.ExitCode(),
			}, nil
		}
		return ExecutionResult{}, runError
	}

	return ExecutionResult{
		StandardOutput: standardOutputBuffer.String(),
		StandardError:  standardErrorBuffer.String(),
		ExitCode:       0,
	}, nil
}
