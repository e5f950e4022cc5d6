// Package licenses implements the license lock reconciliation engine.
//
// LockGenerator fingerprints the license file of every direct submodule of a
// repository, LockFileStore persists those records in the license-lock file,
// Reconciler compares the persisted records against freshly generated ones and
// the files on disk, and NoticeComposer renders the attribution notice from
// the persisted records. The package also exposes Cobra command builders for
// the generate, check, and license commands.
package licenses
