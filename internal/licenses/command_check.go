package licenses

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

const (
	checkCommandUseConstant              = "check [path]"
	checkCommandShortDescriptionConstant = "Check submodule licenses against the repository's license-lock"
	checkCommandLongDescriptionConstant  = "check compares the committed license-lock with the repository's submodules. Every changed or missing license and every submodule without an entry is reported, and the command fails when any discrepancy exists."
	checkFormatFlagNameConstant          = "format"
	checkFormatFlagDescriptionConstant   = "Report format (text or json)"
	checkCommandErrorTemplateConstant    = "license check failed: %w"
)

// CheckCommandBuilder assembles the check command.
type CheckCommandBuilder struct {
	Dependencies CommandDependencies
}

// Build constructs the check command.
func (builder *CheckCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   checkCommandUseConstant,
		Short: checkCommandShortDescriptionConstant,
		Long:  checkCommandLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.run,
	}

	command.Flags().String(checkFormatFlagNameConstant, "", checkFormatFlagDescriptionConstant)

	return command, nil
}

func (builder *CheckCommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.Dependencies.resolveConfiguration()
	if command.Flags().Changed(checkFormatFlagNameConstant) {
		formatValue, _ := command.Flags().GetString(checkFormatFlagNameConstant)
		parsedFormat, parseError := ParseReportFormat(formatValue)
		if parseError != nil {
			return parseError
		}
		configuration.ReportFormat = parsedFormat
	}

	repositoryPath, pathError := builder.Dependencies.resolveRepositoryPath(optionalArgument(arguments, 0), configuration)
	if pathError != nil {
		return pathError
	}

	return runLicenseCheck(command, builder.Dependencies, configuration, repositoryPath)
}

// runLicenseCheck reconciles repositoryPath and renders the report. Text reports go to the error
// stream, JSON reports to the output stream.
func runLicenseCheck(command *cobra.Command, commandDependencies CommandDependencies, configuration CommandConfiguration, repositoryPath string) error {
	collaborators, collaboratorError := commandDependencies.resolveCollaborators()
	if collaboratorError != nil {
		return collaboratorError
	}

	reconciler, reconcilerError := NewReconciler(collaborators.logger, collaborators.inspector, collaborators.fileSystem)
	if reconcilerError != nil {
		return reconcilerError
	}

	executionContext, cancel := commandContextWithTimeout(commandContext(command), configuration)
	defer cancel()

	report, checkError := reconciler.Check(executionContext, repositoryPath)
	if checkError != nil {
		return fmt.Errorf(checkCommandErrorTemplateConstant, checkError)
	}

	reportWriter := command.ErrOrStderr()
	if configuration.ReportFormat == ReportFormatJSON {
		reportWriter = command.OutOrStdout()
	}
	if renderError := NewReportRenderer(configuration.ReportFormat).Render(reportWriter, report); renderError != nil {
		return renderError
	}

	if report.Failed() {
		return DiscrepanciesFoundError{Count: len(report.Discrepancies)}
	}
	return nil
}

func commandContext(command *cobra.Command) context.Context {
	if command == nil || command.Context() == nil {
		return context.Background()
	}
	return command.Context()
}
