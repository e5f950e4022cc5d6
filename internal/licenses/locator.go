package licenses

import (
	"path/filepath"

	"github.com/temirov/licenselock/internal/shared"
)

// licenseFileCandidates is ordered by priority; the first existing name wins.
var licenseFileCandidates = []string{
	"LICENSE.md",
	"LICENSE.txt",
	"LICENSE",
	"license.txt",
	"LICENSE_1_0.txt",
	"UNLICENSE",
}

// LicenseFileCandidates returns the prioritized license file names searched by the locator.
func LicenseFileCandidates() []string {
	return append([]string{}, licenseFileCandidates...)
}

// LicenseFileLocator finds the license file directly inside a directory.
type LicenseFileLocator struct {
	fileSystem shared.FileSystem
}

// NewLicenseFileLocator constructs a locator probing through fileSystem.
func NewLicenseFileLocator(fileSystem shared.FileSystem) LicenseFileLocator {
	return LicenseFileLocator{fileSystem: fileSystem}
}

// Locate returns the highest-priority candidate name present in directory.
func (locator LicenseFileLocator) Locate(directory string) (string, bool) {
	for _, candidateName := range licenseFileCandidates {
		fileInfo, statError := locator.fileSystem.Stat(filepath.Join(directory, candidateName))
		if statError != nil || fileInfo.IsDir() {
			continue
		}
		return candidateName, true
	}
	return "", false
}
