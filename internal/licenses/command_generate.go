package licenses

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	generateCommandUseConstant              = "generate [path]"
	generateCommandShortDescriptionConstant = "Generate a license lock for the repository's submodules"
	generateCommandLongDescriptionConstant  = "generate inspects every direct submodule of the repository, locates its license file, and prints the resulting license-lock records. Use --write to store them in <path>/license-lock."
	generateWriteFlagNameConstant           = "write"
	generateWriteFlagDescriptionConstant    = "Also write the generated records to the repository's license-lock file"
	generateCommandErrorTemplateConstant    = "license lock generation failed: %w"
	generateOutputErrorTemplateConstant     = "unable to print license lock: %w"
	lockFileWrittenMessageConstant          = "Wrote license lock"
	lockFilePathLogFieldConstant            = "lock_file"
)

// GenerateCommandBuilder assembles the generate command.
type GenerateCommandBuilder struct {
	Dependencies CommandDependencies
}

// Build constructs the generate command.
func (builder *GenerateCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   generateCommandUseConstant,
		Short: generateCommandShortDescriptionConstant,
		Long:  generateCommandLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.run,
	}

	command.Flags().Bool(generateWriteFlagNameConstant, false, generateWriteFlagDescriptionConstant)

	return command, nil
}

func (builder *GenerateCommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.Dependencies.resolveConfiguration()
	repositoryPath, pathError := builder.Dependencies.resolveRepositoryPath(optionalArgument(arguments, 0), configuration)
	if pathError != nil {
		return pathError
	}

	collaborators, collaboratorError := builder.Dependencies.resolveCollaborators()
	if collaboratorError != nil {
		return collaboratorError
	}

	generator, generatorError := NewLockGenerator(collaborators.logger, collaborators.inspector, collaborators.fileSystem)
	if generatorError != nil {
		return generatorError
	}

	executionContext, cancel := commandContextWithTimeout(commandContext(command), configuration)
	defer cancel()

	recordSet, generateError := generator.Generate(executionContext, repositoryPath)
	if generateError != nil {
		return fmt.Errorf(generateCommandErrorTemplateConstant, generateError)
	}

	store := NewLockFileStore(collaborators.fileSystem)
	encodedRecords, encodeError := store.Encode(recordSet)
	if encodeError != nil {
		return fmt.Errorf(generateCommandErrorTemplateConstant, encodeError)
	}
	if _, writeError := command.OutOrStdout().Write(encodedRecords); writeError != nil {
		return fmt.Errorf(generateOutputErrorTemplateConstant, writeError)
	}

	writeLockFile, _ := command.Flags().GetBool(generateWriteFlagNameConstant)
	if !writeLockFile {
		return nil
	}
	if saveError := store.Save(repositoryPath, recordSet); saveError != nil {
		return fmt.Errorf(generateCommandErrorTemplateConstant, saveError)
	}
	collaborators.logger.Info(lockFileWrittenMessageConstant, zap.String(lockFilePathLogFieldConstant, LockFilePath(repositoryPath)))
	return nil
}

func optionalArgument(arguments []string, index int) string {
	if index < len(arguments) {
		return arguments[index]
	}
	return ""
}
