package licenses

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/temirov/licenselock/internal/shared"
)

const (
	// LockFileNameConstant is the name of the lock file stored at the repository root.
	LockFileNameConstant                = "license-lock"
	lockFilePermissionsConstant         = fs.FileMode(0o644)
	lockFileIndentConstant              = "  "
	lockFileReadErrorTemplateConstant   = "unable to read lock file %s: %w"
	lockFileEncodeErrorTemplateConstant = "unable to encode lock records: %w"
	lockFileWriteErrorTemplateConstant  = "unable to write lock file %s: %w"
)

// LockFileStore persists record sets as the license-lock file of a repository.
type LockFileStore struct {
	fileSystem shared.FileSystem
}

// NewLockFileStore constructs a store operating through fileSystem.
func NewLockFileStore(fileSystem shared.FileSystem) LockFileStore {
	return LockFileStore{fileSystem: fileSystem}
}

// LockFilePath returns the location of the lock file for repositoryPath.
func LockFilePath(repositoryPath string) string {
	return filepath.Join(repositoryPath, LockFileNameConstant)
}

// Load reads the persisted record set. A missing lock file yields an empty set.
func (store LockFileStore) Load(repositoryPath string) (RecordSet, error) {
	lockFilePath := LockFilePath(repositoryPath)
	lockFileContent, readError := store.fileSystem.ReadFile(lockFilePath)
	if readError != nil {
		if errors.Is(readError, fs.ErrNotExist) {
			return RecordSet{}, nil
		}
		return nil, fmt.Errorf(lockFileReadErrorTemplateConstant, lockFilePath, readError)
	}

	var recordSet RecordSet
	if decodeError := json.Unmarshal(lockFileContent, &recordSet); decodeError != nil {
		return nil, MalformedLockFileError{LockFilePath: lockFilePath, Cause: decodeError}
	}
	if recordSet == nil {
		recordSet = RecordSet{}
	}

	for entryIndex := range recordSet {
		if len(recordSet[entryIndex].Action) == 0 {
			recordSet[entryIndex].Action = ActionFile
		}
	}
	return recordSet, nil
}

// Encode renders recordSet exactly as Save writes it.
func (store LockFileStore) Encode(recordSet RecordSet) ([]byte, error) {
	if recordSet == nil {
		recordSet = RecordSet{}
	}
	var encodedRecords bytes.Buffer
	encoder := json.NewEncoder(&encodedRecords)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", lockFileIndentConstant)
	if encodeError := encoder.Encode(recordSet); encodeError != nil {
		return nil, fmt.Errorf(lockFileEncodeErrorTemplateConstant, encodeError)
	}
	return encodedRecords.Bytes(), nil
}

// Save overwrites the lock file of repositoryPath with recordSet.
func (store LockFileStore) Save(repositoryPath string, recordSet RecordSet) error {
	encodedRecords, encodeError := store.Encode(recordSet)
	if encodeError != nil {
		return encodeError
	}
	lockFilePath := LockFilePath(repositoryPath)
	if writeError := store.fileSystem.WriteFile(lockFilePath, encodedRecords, lockFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(lockFileWriteErrorTemplateConstant, lockFilePath, writeError)
	}
	return nil
}
