package licenses

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/licenselock/internal/shared"
)

const (
	submoduleInspectorNotConfiguredMessageConstant = "submodule inspector not configured"
	fileSystemNotConfiguredMessageConstant         = "filesystem not configured"
	repositoryInspectionErrorTemplateConstant      = "unable to inspect repository %s: %w"
	submoduleListingErrorTemplateConstant          = "unable to list submodules of %s: %w"
	generatorStartedMessageConstant                = "Generating license records"
	generatorSubmoduleMessageConstant              = "Inspected submodule license"
	generatorMissingLicenseMessageConstant         = "Submodule has no recognizable license file"
	generatorUnreadableLicenseMessageConstant      = "Submodule license file could not be fingerprinted"
	generatorCompletedMessageConstant              = "Generated license records"
	repositoryPathLogFieldConstant                 = "repository_path"
	submodulePathLogFieldConstant                  = "submodule_path"
	licenseFileLogFieldConstant                    = "license_file"
	licenseHashLogFieldConstant                    = "license_hash"
	entryCountLogFieldConstant                     = "entry_count"
)

var (
	// ErrSubmoduleInspectorNotConfigured indicates a generator was constructed without an inspector.
	ErrSubmoduleInspectorNotConfigured = errors.New(submoduleInspectorNotConfiguredMessageConstant)
	// ErrFileSystemNotConfigured indicates a component was constructed without a filesystem.
	ErrFileSystemNotConfigured = errors.New(fileSystemNotConfiguredMessageConstant)
)

// LockGenerator derives a fresh record set from the submodules currently present in a repository.
type LockGenerator struct {
	logger        *zap.Logger
	inspector     shared.SubmoduleInspector
	locator       LicenseFileLocator
	fingerprinter Fingerprinter
}

// NewLockGenerator constructs a generator inspecting repositories through inspector.
func NewLockGenerator(logger *zap.Logger, inspector shared.SubmoduleInspector, fileSystem shared.FileSystem) (*LockGenerator, error) {
	if inspector == nil {
		return nil, ErrSubmoduleInspectorNotConfigured
	}
	if fileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LockGenerator{
		logger:        logger,
		inspector:     inspector,
		locator:       NewLicenseFileLocator(fileSystem),
		fingerprinter: NewFingerprinter(fileSystem),
	}, nil
}

// Generate lists the direct submodules of repositoryPath and records the license file and fingerprint of each.
// Every entry carries ActionFile. Submodules without a license file are still recorded.
func (generator *LockGenerator) Generate(executionContext context.Context, repositoryPath string) (RecordSet, error) {
	isRepository, inspectionError := generator.inspector.IsRepository(executionContext, repositoryPath)
	if inspectionError != nil {
		return nil, fmt.Errorf(repositoryInspectionErrorTemplateConstant, repositoryPath, inspectionError)
	}
	if !isRepository {
		return nil, NotARepositoryError{RepositoryPath: repositoryPath}
	}

	submodulePaths, listingError := generator.inspector.ListSubmodulePaths(executionContext, repositoryPath)
	if listingError != nil {
		return nil, fmt.Errorf(submoduleListingErrorTemplateConstant, repositoryPath, listingError)
	}

	generator.logger.Debug(generatorStartedMessageConstant, zap.String(repositoryPathLogFieldConstant, repositoryPath))

	recordSet := make(RecordSet, 0, len(submodulePaths))
	seenPaths := make(map[string]struct{}, len(submodulePaths))
	for _, submodulePath := range submodulePaths {
		if _, duplicate := seenPaths[submodulePath]; duplicate {
			return nil, DuplicateSubmodulePathError{SubmodulePath: submodulePath}
		}
		seenPaths[submodulePath] = struct{}{}
		recordSet = append(recordSet, generator.describeSubmodule(repositoryPath, submodulePath))
	}

	generator.logger.Info(
		generatorCompletedMessageConstant,
		zap.String(repositoryPathLogFieldConstant, repositoryPath),
		zap.Int(entryCountLogFieldConstant, len(recordSet)),
	)
	return recordSet, nil
}

func (generator *LockGenerator) describeSubmodule(repositoryPath string, submodulePath string) Entry {
	entry := Entry{Path: submodulePath, Action: ActionFile}
	submoduleDirectory := filepath.Join(repositoryPath, filepath.FromSlash(submodulePath))

	licenseFileName, licenseFound := generator.locator.Locate(submoduleDirectory)
	if !licenseFound {
		generator.logger.Warn(generatorMissingLicenseMessageConstant, zap.String(submodulePathLogFieldConstant, submodulePath))
		return entry
	}
	entry.LicenseFile = licenseFileName

	licenseHash, fingerprinted := generator.fingerprinter.Fingerprint(filepath.Join(submoduleDirectory, licenseFileName))
	if !fingerprinted {
		generator.logger.Warn(
			generatorUnreadableLicenseMessageConstant,
			zap.String(submodulePathLogFieldConstant, submodulePath),
			zap.String(licenseFileLogFieldConstant, licenseFileName),
		)
		return entry
	}
	entry.Hash = licenseHash

	generator.logger.Debug(
		generatorSubmoduleMessageConstant,
		zap.String(submodulePathLogFieldConstant, submodulePath),
		zap.String(licenseFileLogFieldConstant, licenseFileName),
		zap.String(licenseHashLogFieldConstant, licenseHash),
	)
	return entry
}
