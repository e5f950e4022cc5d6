// Package dependencies resolves default collaborators for command builders
// when callers have not injected their own.
package dependencies
