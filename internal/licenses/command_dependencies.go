package licenses

import (
	"context"

	"go.uber.org/zap"

	"github.com/temirov/licenselock/internal/dependencies"
	"github.com/temirov/licenselock/internal/execshell"
	"github.com/temirov/licenselock/internal/shared"
	"github.com/temirov/licenselock/internal/ui"
	pathutils "github.com/temirov/licenselock/internal/utils/path"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the resolved license command configuration.
type ConfigurationProvider func() CommandConfiguration

// HumanReadableLoggingProvider reports whether console-oriented git lifecycle messages are preferred.
type HumanReadableLoggingProvider func() bool

// CommandDependencies holds the collaborators shared by the license commands. Nil collaborators
// are replaced with git and operating system backed defaults.
type CommandDependencies struct {
	LoggerProvider               LoggerProvider
	ConfigurationProvider        ConfigurationProvider
	HumanReadableLoggingProvider HumanReadableLoggingProvider
	GitExecutor                  shared.GitExecutor
	SubmoduleInspector           shared.SubmoduleInspector
	FileSystem                   shared.FileSystem
	PathResolver                 *pathutils.RepositoryPathResolver
}

type resolvedCollaborators struct {
	logger     *zap.Logger
	inspector  shared.SubmoduleInspector
	fileSystem shared.FileSystem
}

func (commandDependencies CommandDependencies) resolveLogger() *zap.Logger {
	if commandDependencies.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := commandDependencies.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (commandDependencies CommandDependencies) resolveConfiguration() CommandConfiguration {
	configuration := DefaultCommandConfiguration()
	if commandDependencies.ConfigurationProvider != nil {
		configuration = commandDependencies.ConfigurationProvider()
	}
	return configuration.sanitize()
}

func (commandDependencies CommandDependencies) resolveCommandEventsObserver(logger *zap.Logger) execshell.CommandEventObserver {
	if commandDependencies.HumanReadableLoggingProvider == nil || !commandDependencies.HumanReadableLoggingProvider() {
		return nil
	}
	return ui.NewConsoleCommandEventLogger(logger)
}

func (commandDependencies CommandDependencies) resolveFileSystem() shared.FileSystem {
	return dependencies.ResolveFileSystem(commandDependencies.FileSystem)
}

func (commandDependencies CommandDependencies) resolveCollaborators() (resolvedCollaborators, error) {
	logger := commandDependencies.resolveLogger()
	fileSystem := commandDependencies.resolveFileSystem()

	if commandDependencies.SubmoduleInspector != nil {
		return resolvedCollaborators{logger: logger, inspector: commandDependencies.SubmoduleInspector, fileSystem: fileSystem}, nil
	}

	gitExecutor, executorError := dependencies.ResolveGitExecutor(commandDependencies.GitExecutor, logger, commandDependencies.resolveCommandEventsObserver(logger))
	if executorError != nil {
		return resolvedCollaborators{}, executorError
	}
	inspector, inspectorError := dependencies.ResolveSubmoduleInspector(nil, gitExecutor)
	if inspectorError != nil {
		return resolvedCollaborators{}, inspectorError
	}
	return resolvedCollaborators{logger: logger, inspector: inspector, fileSystem: fileSystem}, nil
}

func (commandDependencies CommandDependencies) resolveRepositoryPath(argumentPath string, configuration CommandConfiguration) (string, error) {
	return commandDependencies.PathResolver.Resolve(argumentPath, configuration.RepositoryPath)
}

func commandContextWithTimeout(parentContext context.Context, configuration CommandConfiguration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parentContext, configuration.GitTimeout)
}
