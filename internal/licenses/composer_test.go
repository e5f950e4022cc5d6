package licenses_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/temirov/licenselock/internal/filesystem"
	"github.com/temirov/licenselock/internal/licenses"
)

const (
	testProjectNameConstant    = "Acme"
	composedNoticeLockConstant = `[
  {"path": "deps/fmt", "licenseFile": "LICENSE", "hash": "unchecked", "action": "file"},
  {"path": "deps/zlib", "name": "zlib", "licenseText": "zlib license text", "action": "text"},
  {"path": "deps/tools", "action": "ignore"},
  {"path": "third_party/boost-libs", "licenseFile": "LICENSE_1_0.txt", "hash": "unchecked"}
]`
)

func newNoticeComposer(testInstance *testing.T) *licenses.NoticeComposer {
	testInstance.Helper()
	composer, creationError := licenses.NewNoticeComposer(filesystem.OSFileSystem{})
	require.NoError(testInstance, creationError)
	return composer
}

func TestNoticeComposerRendersBlocksInStoredOrder(testInstance *testing.T) {
	fixture := newRepositoryFixture(testInstance)
	fixture.writeFile(testInstance, "deps/fmt", "LICENSE", testMITLicenseTextConstant)
	fixture.writeFile(testInstance, "deps/tools", "LICENSE", "must not appear")
	fixture.writeFile(testInstance, "third_party/boost-libs", "LICENSE_1_0.txt", testBoostLicenseTextConstant)
	fixture.writeLockFile(testInstance, composedNoticeLockConstant)

	notice, composeError := newNoticeComposer(testInstance).Compose(testProjectNameConstant, fixture.rootPath)
	require.NoError(testInstance, composeError)
	require.NotContains(testInstance, notice, "must not appear")
	require.Equal(testInstance, 2, strings.Count(notice, licenses.NoticeBlockSeparator))

	goldenFiles := goldie.New(testInstance)
	goldenFiles.Assert(testInstance, "composed_notice", []byte(notice))
}

func TestNoticeComposerSingleAndEmptyNotices(testInstance *testing.T) {
	testCases := []struct {
		name           string
		lockContent    string
		expectedNotice string
	}{
		{name: "missing_lock_file", expectedNotice: ""},
		{name: "only_ignored_entries", lockContent: `[{"path":"deps/fmt","action":"ignore"}]`, expectedNotice: ""},
		{
			name:           "single_text_entry",
			lockContent:    `[{"path":"deps/zlib","licenseText":"zlib terms","action":"text"}]`,
			expectedNotice: "Acme uses portions of zlib\n\nzlib terms",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			fixture := newRepositoryFixture(subTest)
			if len(testCase.lockContent) > 0 {
				fixture.writeLockFile(subTest, testCase.lockContent)
			}

			notice, composeError := newNoticeComposer(subTest).Compose(testProjectNameConstant, fixture.rootPath)
			require.NoError(subTest, composeError)
			require.Equal(subTest, testCase.expectedNotice, notice)
		})
	}
}

func TestNoticeComposerFailures(testInstance *testing.T) {
	testCases := []struct {
		name          string
		lockContent   string
		assertFailure func(testInstance *testing.T, composeError error)
	}{
		{
			name:        "unreadable_license_file",
			lockContent: `[{"path":"deps/zlib","licenseText":"zlib terms","action":"text"},{"path":"deps/gone","licenseFile":"LICENSE","hash":"00","action":"file"}]`,
			assertFailure: func(testInstance *testing.T, composeError error) {
				var readError licenses.LicenseFileReadError
				require.ErrorAs(testInstance, composeError, &readError)
				require.Equal(testInstance, "deps/gone", readError.SubmodulePath)
			},
		},
		{
			name:        "text_entry_without_text",
			lockContent: `[{"path":"deps/zlib","action":"text"}]`,
			assertFailure: func(testInstance *testing.T, composeError error) {
				var textError licenses.MissingLicenseTextError
				require.ErrorAs(testInstance, composeError, &textError)
			},
		},
		{
			name:        "file_entry_without_license_file",
			lockContent: `[{"path":"deps/fmt","action":"file"}]`,
			assertFailure: func(testInstance *testing.T, composeError error) {
				var infoError licenses.MissingLicenseInfoError
				require.ErrorAs(testInstance, composeError, &infoError)
			},
		},
		{
			name:        "malformed_lock_file",
			lockContent: `[{"path":"deps/fmt","action":"bundle"}]`,
			assertFailure: func(testInstance *testing.T, composeError error) {
				var malformedError licenses.MalformedLockFileError
				require.ErrorAs(testInstance, composeError, &malformedError)
			},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			fixture := newRepositoryFixture(subTest)
			fixture.writeLockFile(subTest, testCase.lockContent)

			notice, composeError := newNoticeComposer(subTest).Compose(testProjectNameConstant, fixture.rootPath)
			require.Error(subTest, composeError)
			require.Empty(subTest, notice)
			testCase.assertFailure(subTest, composeError)
		})
	}
}

func TestNewNoticeComposerRequiresFileSystem(testInstance *testing.T) {
	composer, creationError := licenses.NewNoticeComposer(nil)
	require.ErrorIs(testInstance, creationError, licenses.ErrFileSystemNotConfigured)
	require.Nil(testInstance, composer)
}
