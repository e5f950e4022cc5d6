package dependencies_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/temirov/licenselock/internal/dependencies"
	"github.com/temirov/licenselock/internal/execshell"
	"github.com/temirov/licenselock/internal/filesystem"
	"github.com/temirov/licenselock/internal/gitrepo"
	"github.com/temirov/licenselock/internal/shared/mocks"
)

func TestResolversPreferInjectedCollaborators(t *testing.T) {
	controller := gomock.NewController(t)
	fileSystem := mocks.NewMockFileSystem(controller)
	executor := mocks.NewMockGitExecutor(controller)
	inspector := mocks.NewMockSubmoduleInspector(controller)

	require.Same(t, fileSystem, dependencies.ResolveFileSystem(fileSystem))

	resolvedExecutor, executorError := dependencies.ResolveGitExecutor(executor, nil, nil)
	require.NoError(t, executorError)
	require.Same(t, executor, resolvedExecutor)

	resolvedInspector, inspectorError := dependencies.ResolveSubmoduleInspector(inspector, nil)
	require.NoError(t, inspectorError)
	require.Same(t, inspector, resolvedInspector)
}

func TestResolversBuildDefaults(t *testing.T) {
	require.Equal(t, filesystem.OSFileSystem{}, dependencies.ResolveFileSystem(nil))

	resolvedExecutor, executorError := dependencies.ResolveGitExecutor(nil, zap.NewNop(), nil)
	require.NoError(t, executorError)
	require.IsType(t, &execshell.ShellExecutor{}, resolvedExecutor)

	_, missingLoggerError := dependencies.ResolveGitExecutor(nil, nil, nil)
	require.ErrorIs(t, missingLoggerError, execshell.ErrLoggerNotConfigured)

	resolvedInspector, inspectorError := dependencies.ResolveSubmoduleInspector(nil, resolvedExecutor)
	require.NoError(t, inspectorError)
	require.IsType(t, &gitrepo.SubmoduleInspector{}, resolvedInspector)
}
