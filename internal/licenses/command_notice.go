package licenses

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

const (
	noticeCommandUseConstant               = "license <name> [path]"
	noticeCommandShortDescriptionConstant  = "Write the combined license notice to standard output"
	noticeCommandLongDescriptionConstant   = "license verifies the repository's license-lock like check does and then prints one attribution block per submodule, naming the project as the user of each dependency."
	noticeSkipCheckFlagNameConstant        = "skip-check"
	noticeSkipCheckFlagDescriptionConstant = "Compose the notice without checking the license-lock first"
	noticeCommandErrorTemplateConstant     = "license notice composition failed: %w"
	noticeOutputErrorTemplateConstant      = "unable to print license notice: %w"
	projectNameMissingMessageConstant      = "project name must not be empty"
)

var errProjectNameMissing = errors.New(projectNameMissingMessageConstant)

// NoticeCommandBuilder assembles the license command that prints the attribution notice.
type NoticeCommandBuilder struct {
	Dependencies CommandDependencies
}

// Build constructs the license command.
func (builder *NoticeCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   noticeCommandUseConstant,
		Short: noticeCommandShortDescriptionConstant,
		Long:  noticeCommandLongDescriptionConstant,
		Args:  cobra.RangeArgs(1, 2),
		RunE:  builder.run,
	}

	command.Flags().Bool(noticeSkipCheckFlagNameConstant, false, noticeSkipCheckFlagDescriptionConstant)

	return command, nil
}

func (builder *NoticeCommandBuilder) run(command *cobra.Command, arguments []string) error {
	projectName := strings.TrimSpace(optionalArgument(arguments, 0))
	if len(projectName) == 0 {
		return fmt.Errorf(noticeCommandErrorTemplateConstant, errProjectNameMissing)
	}

	configuration := builder.Dependencies.resolveConfiguration()
	configuration.ReportFormat = ReportFormatText
	repositoryPath, pathError := builder.Dependencies.resolveRepositoryPath(optionalArgument(arguments, 1), configuration)
	if pathError != nil {
		return pathError
	}

	skipCheck, _ := command.Flags().GetBool(noticeSkipCheckFlagNameConstant)
	if !skipCheck {
		if checkError := runLicenseCheck(command, builder.Dependencies, configuration, repositoryPath); checkError != nil {
			return checkError
		}
	}

	fileSystem := builder.Dependencies.resolveFileSystem()
	composer, composerError := NewNoticeComposer(fileSystem)
	if composerError != nil {
		return composerError
	}

	notice, composeError := composer.Compose(projectName, repositoryPath)
	if composeError != nil {
		return fmt.Errorf(noticeCommandErrorTemplateConstant, composeError)
	}

	if _, writeError := io.WriteString(command.OutOrStdout(), notice+noticeLineSeparatorConstant); writeError != nil {
		return fmt.Errorf(noticeOutputErrorTemplateConstant, writeError)
	}
	return nil
}
