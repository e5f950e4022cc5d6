package shared

import (
	"context"
	"io/fs"

	"github.com/temirov/licenselock/internal/execshell"
)

//go:generate mockgen -source=types.go -destination=mocks/mock_types.go -package=mocks

// GitExecutor exposes the subset of shell execution used by repository inspection.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// SubmoduleInspector confirms repositories and enumerates their direct submodules.
type SubmoduleInspector interface {
	IsRepository(executionContext context.Context, repositoryPath string) (bool, error)
	ListSubmodulePaths(executionContext context.Context, repositoryPath string) ([]string, error)
}

// FileSystem exposes the filesystem operations required by the license lock workflows.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, permissions fs.FileMode) error
}
