package licenses

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/temirov/licenselock/internal/shared"
)

const (
	noticeHeaderTemplateConstant         = "%s uses portions of %s"
	noticeLineSeparatorConstant          = "\n"
	noticeSeparatorRuleCharacterConstant = "="
	noticeSeparatorRuleWidthConstant     = 75
	loadLockRecordsErrorTemplateConstant = "unable to load lock records of %s: %w"
)

// NoticeBlockSeparator separates consecutive attribution blocks in a composed notice.
var NoticeBlockSeparator = noticeLineSeparatorConstant + strings.Repeat(noticeSeparatorRuleCharacterConstant, noticeSeparatorRuleWidthConstant) + noticeLineSeparatorConstant + noticeLineSeparatorConstant

// NoticeComposer renders the consolidated attribution notice from a persisted record set.
type NoticeComposer struct {
	store      LockFileStore
	fileSystem shared.FileSystem
}

// NewNoticeComposer constructs a composer reading lock files and license bodies through fileSystem.
func NewNoticeComposer(fileSystem shared.FileSystem) (*NoticeComposer, error) {
	if fileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}
	return &NoticeComposer{store: NewLockFileStore(fileSystem), fileSystem: fileSystem}, nil
}

// Compose renders one block per non-ignored entry of the lock file of repositoryPath, in stored order.
// No partial notice is returned on failure.
func (composer *NoticeComposer) Compose(projectName string, repositoryPath string) (string, error) {
	recordSet, loadError := composer.store.Load(repositoryPath)
	if loadError != nil {
		return "", fmt.Errorf(loadLockRecordsErrorTemplateConstant, repositoryPath, loadError)
	}

	noticeBlocks := make([]string, 0, len(recordSet))
	for _, entry := range recordSet {
		if entry.Action == ActionIgnore {
			continue
		}
		licenseBody, bodyError := composer.resolveBody(repositoryPath, entry)
		if bodyError != nil {
			return "", bodyError
		}
		noticeHeader := fmt.Sprintf(noticeHeaderTemplateConstant, projectName, entry.DisplayName())
		noticeBlocks = append(noticeBlocks, strings.Join([]string{noticeHeader, "", licenseBody}, noticeLineSeparatorConstant))
	}

	return strings.Join(noticeBlocks, NoticeBlockSeparator), nil
}

func (composer *NoticeComposer) resolveBody(repositoryPath string, entry Entry) (string, error) {
	if entry.Action == ActionText {
		if len(entry.LicenseText) == 0 {
			return "", MissingLicenseTextError{SubmodulePath: entry.Path}
		}
		return entry.LicenseText, nil
	}

	if len(entry.LicenseFile) == 0 {
		return "", MissingLicenseInfoError{SubmodulePath: entry.Path}
	}
	licenseFilePath := filepath.Join(repositoryPath, filepath.FromSlash(entry.Path), entry.LicenseFile)
	licenseContent, readError := composer.fileSystem.ReadFile(licenseFilePath)
	if readError != nil {
		return "", LicenseFileReadError{SubmodulePath: entry.Path, LicenseFilePath: licenseFilePath, Cause: readError}
	}
	return string(licenseContent), nil
}
