// Package shared declares the collaborator contracts used across the license
// lock workflows so that command builders and services can be tested with
// substitutes for git and the filesystem.
package shared
