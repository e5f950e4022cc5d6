package dependencies

import (
	"go.uber.org/zap"

	"github.com/temirov/licenselock/internal/execshell"
	"github.com/temirov/licenselock/internal/filesystem"
	"github.com/temirov/licenselock/internal/gitrepo"
	"github.com/temirov/licenselock/internal/shared"
)

// ResolveFileSystem returns the provided filesystem or an OS-backed default.
func ResolveFileSystem(existing shared.FileSystem) shared.FileSystem {
	if existing != nil {
		return existing
	}
	return filesystem.OSFileSystem{}
}

// ResolveGitExecutor returns the provided executor or constructs a shell-backed default reporting to observer.
func ResolveGitExecutor(existing shared.GitExecutor, logger *zap.Logger, observer execshell.CommandEventObserver) (shared.GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, creationError := execshell.NewShellExecutorWithObserver(logger, commandRunner, observer)
	if creationError != nil {
		return nil, creationError
	}
	return shellExecutor, nil
}

// ResolveSubmoduleInspector returns the provided inspector or constructs a git-backed one from the executor.
func ResolveSubmoduleInspector(existing shared.SubmoduleInspector, executor shared.GitExecutor) (shared.SubmoduleInspector, error) {
	if existing != nil {
		return existing, nil
	}
	return gitrepo.NewSubmoduleInspector(executor)
}
