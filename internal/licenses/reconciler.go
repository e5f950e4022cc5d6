package licenses

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/temirov/licenselock/internal/shared"
)

const (
	missingLicenseInfoMessageTemplateConstant  = "license information missing for submodule %s"
	licenseHashMismatchMessageTemplateConstant = "license for submodule %s changed\n  old hash: %s\n  new hash: %s"
	missingLicenseTextMessageTemplateConstant  = "submodule %s has action 'text' but licenseText is not defined"
	uncoveredSubmoduleMessageTemplateConstant  = "no license entry for submodule %s"
	reconcilerCompletedMessageConstant         = "Checked license records"
	discrepancyCountLogFieldConstant           = "discrepancy_count"
)

// DiscrepancyKind classifies a reconciliation finding.
type DiscrepancyKind string

// Discrepancy kinds reported by the reconciler.
const (
	DiscrepancyMissingLicenseInfo  DiscrepancyKind = "missing_license_info"
	DiscrepancyLicenseHashMismatch DiscrepancyKind = "license_hash_mismatch"
	DiscrepancyMissingLicenseText  DiscrepancyKind = "missing_license_text"
	DiscrepancyUncoveredSubmodule  DiscrepancyKind = "uncovered_submodule"
)

// Discrepancy is one finding of a license check.
type Discrepancy struct {
	Kind          DiscrepancyKind `json:"kind"`
	SubmodulePath string          `json:"path"`
	OldHash       string          `json:"oldHash,omitempty"`
	NewHash       string          `json:"newHash,omitempty"`
}

// Message renders the operator-facing description of the discrepancy.
func (discrepancy Discrepancy) Message() string {
	switch discrepancy.Kind {
	case DiscrepancyMissingLicenseInfo:
		return fmt.Sprintf(missingLicenseInfoMessageTemplateConstant, discrepancy.SubmodulePath)
	case DiscrepancyLicenseHashMismatch:
		return fmt.Sprintf(licenseHashMismatchMessageTemplateConstant, discrepancy.SubmodulePath, discrepancy.OldHash, discrepancy.NewHash)
	case DiscrepancyMissingLicenseText:
		return fmt.Sprintf(missingLicenseTextMessageTemplateConstant, discrepancy.SubmodulePath)
	case DiscrepancyUncoveredSubmodule:
		return fmt.Sprintf(uncoveredSubmoduleMessageTemplateConstant, discrepancy.SubmodulePath)
	default:
		return string(discrepancy.Kind) + " " + discrepancy.SubmodulePath
	}
}

// Report aggregates every discrepancy found by a check.
type Report struct {
	Discrepancies []Discrepancy `json:"discrepancies"`
}

// Failed reports whether the check found any discrepancy.
func (report Report) Failed() bool {
	return len(report.Discrepancies) > 0
}

// Reconciler compares the persisted lock records against the current repository state.
type Reconciler struct {
	logger        *zap.Logger
	store         LockFileStore
	generator     *LockGenerator
	fingerprinter Fingerprinter
}

// NewReconciler constructs a reconciler from its collaborators.
func NewReconciler(logger *zap.Logger, inspector shared.SubmoduleInspector, fileSystem shared.FileSystem) (*Reconciler, error) {
	generator, generatorError := NewLockGenerator(logger, inspector, fileSystem)
	if generatorError != nil {
		return nil, generatorError
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{
		logger:        logger,
		store:         NewLockFileStore(fileSystem),
		generator:     generator,
		fingerprinter: NewFingerprinter(fileSystem),
	}, nil
}

// Check loads the persisted records and generates fresh ones concurrently, then validates every persisted
// entry and confirms every present submodule has an entry. All discrepancies are collected.
// Persisted entries for submodules no longer present are not reported.
func (reconciler *Reconciler) Check(executionContext context.Context, repositoryPath string) (Report, error) {
	var persistedRecords RecordSet
	var generatedRecords RecordSet

	waitGroup, groupContext := errgroup.WithContext(executionContext)
	waitGroup.Go(func() error {
		loadedRecords, loadError := reconciler.store.Load(repositoryPath)
		if loadError != nil {
			return loadError
		}
		persistedRecords = loadedRecords
		return nil
	})
	waitGroup.Go(func() error {
		freshRecords, generateError := reconciler.generator.Generate(groupContext, repositoryPath)
		if generateError != nil {
			return generateError
		}
		generatedRecords = freshRecords
		return nil
	})
	if waitError := waitGroup.Wait(); waitError != nil {
		return Report{}, waitError
	}

	report := Report{Discrepancies: []Discrepancy{}}
	for _, persistedEntry := range persistedRecords {
		report.Discrepancies = append(report.Discrepancies, reconciler.validateEntry(repositoryPath, persistedEntry)...)
	}
	for _, generatedEntry := range generatedRecords {
		if _, covered := persistedRecords.Lookup(generatedEntry.Path); !covered {
			report.Discrepancies = append(report.Discrepancies, Discrepancy{
				Kind:          DiscrepancyUncoveredSubmodule,
				SubmodulePath: generatedEntry.Path,
			})
		}
	}

	reconciler.logger.Info(
		reconcilerCompletedMessageConstant,
		zap.String(repositoryPathLogFieldConstant, repositoryPath),
		zap.Int(discrepancyCountLogFieldConstant, len(report.Discrepancies)),
	)
	return report, nil
}

func (reconciler *Reconciler) validateEntry(repositoryPath string, entry Entry) []Discrepancy {
	if entry.Action == ActionIgnore {
		return nil
	}

	var discrepancies []Discrepancy
	if !entry.hasLicenseInfo() {
		discrepancies = append(discrepancies, Discrepancy{Kind: DiscrepancyMissingLicenseInfo, SubmodulePath: entry.Path})
	} else {
		licenseFilePath := filepath.Join(repositoryPath, filepath.FromSlash(entry.Path), entry.LicenseFile)
		currentHash, _ := reconciler.fingerprinter.Fingerprint(licenseFilePath)
		if currentHash != entry.Hash {
			discrepancies = append(discrepancies, Discrepancy{
				Kind:          DiscrepancyLicenseHashMismatch,
				SubmodulePath: entry.Path,
				OldHash:       entry.Hash,
				NewHash:       currentHash,
			})
		}
	}

	if entry.Action == ActionText && len(entry.LicenseText) == 0 {
		discrepancies = append(discrepancies, Discrepancy{Kind: DiscrepancyMissingLicenseText, SubmodulePath: entry.Path})
	}
	return discrepancies
}
