// Package ui renders git command lifecycle events as concise console messages
// when the CLI runs with the console log format.
package ui
