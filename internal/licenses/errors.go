package licenses

import "fmt"

const (
	notARepositoryErrorTemplateConstant         = "%s is not a git repository"
	malformedLockFileErrorTemplateConstant      = "malformed lock file %s: %v"
	licenseFileReadErrorTemplateConstant        = "unable to read license file %s for submodule %s: %v"
	duplicateSubmodulePathErrorTemplateConstant = "submodule %s reported more than once"
	missingLicenseTextErrorTemplateConstant     = "submodule %s has action 'text' but licenseText is not defined"
	missingLicenseInfoErrorTemplateConstant     = "license information missing for submodule %s"
	discrepanciesFoundErrorTemplateConstant     = "license check failed with %d discrepancies"
	singleDiscrepancyFoundErrorTemplateConstant = "license check failed with 1 discrepancy"
)

// NotARepositoryError indicates the requested path is not the root of a git repository.
type NotARepositoryError struct {
	RepositoryPath string
}

// Error describes the invalid repository path.
func (repositoryError NotARepositoryError) Error() string {
	return fmt.Sprintf(notARepositoryErrorTemplateConstant, repositoryError.RepositoryPath)
}

// MalformedLockFileError indicates a present lock file could not be decoded.
type MalformedLockFileError struct {
	LockFilePath string
	Cause        error
}

// Error describes the decoding failure.
func (lockFileError MalformedLockFileError) Error() string {
	return fmt.Sprintf(malformedLockFileErrorTemplateConstant, lockFileError.LockFilePath, lockFileError.Cause)
}

// Unwrap exposes the decoding failure.
func (lockFileError MalformedLockFileError) Unwrap() error {
	return lockFileError.Cause
}

// LicenseFileReadError indicates a license file body could not be read while composing a notice.
type LicenseFileReadError struct {
	SubmodulePath   string
	LicenseFilePath string
	Cause           error
}

// Error describes the read failure.
func (readError LicenseFileReadError) Error() string {
	return fmt.Sprintf(licenseFileReadErrorTemplateConstant, readError.LicenseFilePath, readError.SubmodulePath, readError.Cause)
}

// Unwrap exposes the read failure.
func (readError LicenseFileReadError) Unwrap() error {
	return readError.Cause
}

// DuplicateSubmodulePathError indicates the repository reported the same submodule path twice.
type DuplicateSubmodulePathError struct {
	SubmodulePath string
}

// Error describes the duplicated path.
func (duplicateError DuplicateSubmodulePathError) Error() string {
	return fmt.Sprintf(duplicateSubmodulePathErrorTemplateConstant, duplicateError.SubmodulePath)
}

// MissingLicenseTextError indicates a text entry without licenseText reached notice composition.
type MissingLicenseTextError struct {
	SubmodulePath string
}

// Error describes the incomplete entry.
func (textError MissingLicenseTextError) Error() string {
	return fmt.Sprintf(missingLicenseTextErrorTemplateConstant, textError.SubmodulePath)
}

// MissingLicenseInfoError indicates a file entry without licenseFile reached notice composition.
type MissingLicenseInfoError struct {
	SubmodulePath string
}

// Error describes the incomplete entry.
func (infoError MissingLicenseInfoError) Error() string {
	return fmt.Sprintf(missingLicenseInfoErrorTemplateConstant, infoError.SubmodulePath)
}

// DiscrepanciesFoundError signals that a license check reported at least one discrepancy.
type DiscrepanciesFoundError struct {
	Count int
}

// Error summarizes the failed check.
func (discrepancyError DiscrepanciesFoundError) Error() string {
	if discrepancyError.Count == 1 {
		return singleDiscrepancyFoundErrorTemplateConstant
	}
	return fmt.Sprintf(discrepanciesFoundErrorTemplateConstant, discrepancyError.Count)
}
