// Package gitrepo interrogates git repositories on behalf of the license lock
// workflows.
//
// SubmoduleInspector confirms that a path is the root of a git work tree and
// enumerates the direct submodules recorded in its index.
package gitrepo
