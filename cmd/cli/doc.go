// Package cli constructs the license-lock command-line interface. It wires the Cobra
// command hierarchy to the layered configuration loader and the zap logger, and
// registers the generate, check, and license commands.
package cli
