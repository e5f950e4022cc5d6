package licenses_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/licenselock/internal/filesystem"
	"github.com/temirov/licenselock/internal/licenses"
	"github.com/temirov/licenselock/internal/shared/mocks"
)

func TestNewLockGeneratorValidatesCollaborators(testInstance *testing.T) {
	controller := gomock.NewController(testInstance)

	_, inspectorError := licenses.NewLockGenerator(zap.NewNop(), nil, filesystem.OSFileSystem{})
	require.ErrorIs(testInstance, inspectorError, licenses.ErrSubmoduleInspectorNotConfigured)

	_, fileSystemError := licenses.NewLockGenerator(zap.NewNop(), mocks.NewMockSubmoduleInspector(controller), nil)
	require.ErrorIs(testInstance, fileSystemError, licenses.ErrFileSystemNotConfigured)

	generator, creationError := licenses.NewLockGenerator(nil, mocks.NewMockSubmoduleInspector(controller), filesystem.OSFileSystem{})
	require.NoError(testInstance, creationError)
	require.NotNil(testInstance, generator)
}

func TestLockGeneratorRecordsSubmodulesInInspectorOrder(testInstance *testing.T) {
	fixture := newRepositoryFixture(testInstance)
	fixture.writeFile(testInstance, "vendor/zlib", "LICENSE", testMITLicenseTextConstant)
	fixture.writeFile(testInstance, "deps/fmt", "LICENSE.md", testApacheLicenseTextConstant)
	fixture.writeFile(testInstance, "deps/fmt", "LICENSE", testMITLicenseTextConstant)
	fixture.writeFile(testInstance, "deps/bare", "README.md", "no license here")

	observedCore, observedLogs := observer.New(zapcore.DebugLevel)
	generator, creationError := licenses.NewLockGenerator(zap.New(observedCore), fixture.inspector(testInstance, "vendor/zlib", "deps/fmt", "deps/bare"), filesystem.OSFileSystem{})
	require.NoError(testInstance, creationError)

	recordSet, generateError := generator.Generate(context.Background(), fixture.rootPath)
	require.NoError(testInstance, generateError)
	require.Equal(testInstance, licenses.RecordSet{
		{Path: "vendor/zlib", LicenseFile: "LICENSE", Hash: sha256Hex(testMITLicenseTextConstant), Action: licenses.ActionFile},
		{Path: "deps/fmt", LicenseFile: "LICENSE.md", Hash: sha256Hex(testApacheLicenseTextConstant), Action: licenses.ActionFile},
		{Path: "deps/bare", Action: licenses.ActionFile},
	}, recordSet)

	require.Equal(testInstance, 1, observedLogs.FilterMessage("Submodule has no recognizable license file").Len())
	require.Equal(testInstance, 1, observedLogs.FilterMessage("Generated license records").Len())
}

func TestLockGeneratorRecordsUninitializedSubmodules(testInstance *testing.T) {
	fixture := newRepositoryFixture(testInstance)

	generator, creationError := licenses.NewLockGenerator(zap.NewNop(), fixture.inspector(testInstance, "deps/not-cloned"), filesystem.OSFileSystem{})
	require.NoError(testInstance, creationError)

	recordSet, generateError := generator.Generate(context.Background(), fixture.rootPath)
	require.NoError(testInstance, generateError)
	require.Equal(testInstance, licenses.RecordSet{{Path: "deps/not-cloned", Action: licenses.ActionFile}}, recordSet)
}

func TestLockGeneratorReturnsEmptySetWithoutSubmodules(testInstance *testing.T) {
	fixture := newRepositoryFixture(testInstance)

	generator, creationError := licenses.NewLockGenerator(zap.NewNop(), fixture.inspector(testInstance), filesystem.OSFileSystem{})
	require.NoError(testInstance, creationError)

	recordSet, generateError := generator.Generate(context.Background(), fixture.rootPath)
	require.NoError(testInstance, generateError)
	require.Empty(testInstance, recordSet)
	require.NotNil(testInstance, recordSet)
}

func TestLockGeneratorFailures(testInstance *testing.T) {
	inspectionFailure := errors.New("git unavailable")

	testCases := []struct {
		name          string
		configure     func(inspector *mocks.MockSubmoduleInspector)
		assertFailure func(testInstance *testing.T, generateError error)
	}{
		{
			name: "not_a_repository",
			configure: func(inspector *mocks.MockSubmoduleInspector) {
				inspector.EXPECT().IsRepository(gomock.Any(), "/not/a/repo").Return(false, nil)
			},
			assertFailure: func(testInstance *testing.T, generateError error) {
				var repositoryError licenses.NotARepositoryError
				require.ErrorAs(testInstance, generateError, &repositoryError)
				require.Equal(testInstance, "/not/a/repo", repositoryError.RepositoryPath)
			},
		},
		{
			name: "inspection_failure",
			configure: func(inspector *mocks.MockSubmoduleInspector) {
				inspector.EXPECT().IsRepository(gomock.Any(), "/not/a/repo").Return(false, inspectionFailure)
			},
			assertFailure: func(testInstance *testing.T, generateError error) {
				require.ErrorIs(testInstance, generateError, inspectionFailure)
			},
		},
		{
			name: "listing_failure",
			configure: func(inspector *mocks.MockSubmoduleInspector) {
				inspector.EXPECT().IsRepository(gomock.Any(), "/not/a/repo").Return(true, nil)
				inspector.EXPECT().ListSubmodulePaths(gomock.Any(), "/not/a/repo").Return(nil, inspectionFailure)
			},
			assertFailure: func(testInstance *testing.T, generateError error) {
				require.ErrorIs(testInstance, generateError, inspectionFailure)
			},
		},
		{
			name: "duplicate_paths",
			configure: func(inspector *mocks.MockSubmoduleInspector) {
				inspector.EXPECT().IsRepository(gomock.Any(), "/not/a/repo").Return(true, nil)
				inspector.EXPECT().ListSubmodulePaths(gomock.Any(), "/not/a/repo").Return([]string{"deps/fmt", "deps/fmt"}, nil)
			},
			assertFailure: func(testInstance *testing.T, generateError error) {
				var duplicateError licenses.DuplicateSubmodulePathError
				require.ErrorAs(testInstance, generateError, &duplicateError)
				require.Equal(testInstance, "deps/fmt", duplicateError.SubmodulePath)
			},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			controller := gomock.NewController(subTest)
			inspector := mocks.NewMockSubmoduleInspector(controller)
			testCase.configure(inspector)

			generator, creationError := licenses.NewLockGenerator(zap.NewNop(), inspector, filesystem.OSFileSystem{})
			require.NoError(subTest, creationError)

			recordSet, generateError := generator.Generate(context.Background(), "/not/a/repo")
			require.Error(subTest, generateError)
			require.Nil(subTest, recordSet)
			testCase.assertFailure(subTest, generateError)
		})
	}
}
