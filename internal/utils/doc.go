// Package utils holds the configuration and logging plumbing shared by the CLI commands.
//
// ConfigurationLoader layers embedded YAML defaults, an optional configuration file, and
// prefixed environment variables through Viper. LoggerFactory builds zap loggers in the
// structured (JSON) or console encodings.
package utils
