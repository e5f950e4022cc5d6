package licenses

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/temirov/licenselock/internal/shared"
)

// Fingerprinter computes content fingerprints of files.
type Fingerprinter struct {
	fileSystem shared.FileSystem
}

// NewFingerprinter constructs a Fingerprinter reading through fileSystem.
func NewFingerprinter(fileSystem shared.FileSystem) Fingerprinter {
	return Fingerprinter{fileSystem: fileSystem}
}

// Fingerprint returns the lowercase hexadecimal SHA-256 digest of the file at filePath.
// Any read failure, including a missing file, yields ok == false.
func (fingerprinter Fingerprinter) Fingerprint(filePath string) (string, bool) {
	fileContent, readError := fingerprinter.fileSystem.ReadFile(filePath)
	if readError != nil {
		return "", false
	}
	digest := sha256.Sum256(fileContent)
	return hex.EncodeToString(digest[:]), true
}
