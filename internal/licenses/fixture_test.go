package licenses_test

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/temirov/licenselock/internal/shared/mocks"
)

const (
	testDirectoryPermissionsConstant = 0o755
	testFilePermissionsConstant      = 0o644
	testMITLicenseTextConstant       = "MIT License\n\nPermission is hereby granted, free of charge.\n"
	testApacheLicenseTextConstant    = "Apache License\nVersion 2.0, January 2004\n"
	testBoostLicenseTextConstant     = "Boost Software License - Version 1.0\n"
)

type repositoryFixture struct {
	rootPath string
}

func newRepositoryFixture(testInstance *testing.T) repositoryFixture {
	testInstance.Helper()
	return repositoryFixture{rootPath: testInstance.TempDir()}
}

func (fixture repositoryFixture) addSubmodule(testInstance *testing.T, submodulePath string) string {
	testInstance.Helper()
	submoduleDirectory := filepath.Join(fixture.rootPath, filepath.FromSlash(submodulePath))
	require.NoError(testInstance, os.MkdirAll(submoduleDirectory, testDirectoryPermissionsConstant))
	return submoduleDirectory
}

func (fixture repositoryFixture) writeFile(testInstance *testing.T, submodulePath string, fileName string, content string) {
	testInstance.Helper()
	submoduleDirectory := fixture.addSubmodule(testInstance, submodulePath)
	require.NoError(testInstance, os.WriteFile(filepath.Join(submoduleDirectory, fileName), []byte(content), testFilePermissionsConstant))
}

func (fixture repositoryFixture) writeLockFile(testInstance *testing.T, content string) {
	testInstance.Helper()
	require.NoError(testInstance, os.WriteFile(filepath.Join(fixture.rootPath, "license-lock"), []byte(content), testFilePermissionsConstant))
}

func (fixture repositoryFixture) readLockFile(testInstance *testing.T) string {
	testInstance.Helper()
	content, readError := os.ReadFile(filepath.Join(fixture.rootPath, "license-lock"))
	require.NoError(testInstance, readError)
	return string(content)
}

func (fixture repositoryFixture) inspector(testInstance *testing.T, submodulePaths ...string) *mocks.MockSubmoduleInspector {
	testInstance.Helper()
	controller := gomock.NewController(testInstance)
	inspector := mocks.NewMockSubmoduleInspector(controller)
	inspector.EXPECT().IsRepository(gomock.Any(), fixture.rootPath).Return(true, nil).AnyTimes()
	inspector.EXPECT().ListSubmodulePaths(gomock.Any(), fixture.rootPath).Return(submodulePaths, nil).AnyTimes()
	return inspector
}

func sha256Hex(content string) string {
	digest := sha256.Sum256([]byte(content))
	return hex.EncodeToString(digest[:])
}
