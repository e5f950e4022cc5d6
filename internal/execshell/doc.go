// Package execshell provides structured helpers for invoking git.
//
// ShellExecutor wraps a CommandRunner with zap logging and lifecycle event
// notifications, OSCommandRunner performs the actual process execution, and
// CommandMessageFormatter renders human-readable descriptions of the git
// invocations issued while inspecting repositories and their submodules.
package execshell
