package licenses

import (
	"strings"
	"time"
)

const (
	repositoryPathConfigurationKeyConstant = "repository_path"
	gitTimeoutConfigurationKeyConstant     = "git_timeout"
	reportFormatConfigurationKeyConstant   = "report_format"
	configurationKeySeparatorConstant      = "."
	defaultRepositoryPathConstant          = "."
	defaultGitTimeoutConstant              = 30 * time.Second
)

// CommandConfiguration captures persistent settings shared by the license commands.
type CommandConfiguration struct {
	RepositoryPath string        `mapstructure:"repository_path"`
	GitTimeout     time.Duration `mapstructure:"git_timeout"`
	ReportFormat   ReportFormat  `mapstructure:"report_format"`
}

// DefaultCommandConfiguration returns baseline configuration values for the license commands.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		RepositoryPath: defaultRepositoryPathConstant,
		GitTimeout:     defaultGitTimeoutConstant,
		ReportFormat:   ReportFormatText,
	}
}

// DefaultConfigurationValues exposes the defaults keyed beneath configurationPrefix for configuration loaders.
func DefaultConfigurationValues(configurationPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	keyPrefix := strings.TrimSpace(configurationPrefix)
	if len(keyPrefix) > 0 && !strings.HasSuffix(keyPrefix, configurationKeySeparatorConstant) {
		keyPrefix += configurationKeySeparatorConstant
	}
	return map[string]any{
		keyPrefix + repositoryPathConfigurationKeyConstant: defaults.RepositoryPath,
		keyPrefix + gitTimeoutConfigurationKeyConstant:     defaults.GitTimeout.String(),
		keyPrefix + reportFormatConfigurationKeyConstant:   string(defaults.ReportFormat),
	}
}

// sanitize trims values and restores defaults for unset or non-positive settings.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	defaults := DefaultCommandConfiguration()
	sanitized := configuration

	sanitized.RepositoryPath = strings.TrimSpace(configuration.RepositoryPath)
	if len(sanitized.RepositoryPath) == 0 {
		sanitized.RepositoryPath = defaults.RepositoryPath
	}
	if sanitized.GitTimeout <= 0 {
		sanitized.GitTimeout = defaults.GitTimeout
	}
	if len(sanitized.ReportFormat) == 0 {
		sanitized.ReportFormat = defaults.ReportFormat
	}

	return sanitized
}
