package cli_test

import (
	"testing"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/licenselock/cmd/cli"
	"github.com/temirov/licenselock/internal/licenses"
)

func decodeConfiguration(t *testing.T, content []byte) cli.ApplicationConfiguration {
	t.Helper()

	var rawConfiguration map[string]any
	require.NoError(t, yaml.Unmarshal(content, &rawConfiguration))

	var configuration cli.ApplicationConfiguration
	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		ErrorUnused: true,
		Result:      &configuration,
	})
	require.NoError(t, decoderError)
	require.NoError(t, decoder.Decode(rawConfiguration))
	return configuration
}

func TestEmbeddedDefaultConfigurationDecodes(t *testing.T) {
	content, contentType := cli.EmbeddedDefaultConfiguration()
	require.Equal(t, "yaml", contentType)

	configuration := decodeConfiguration(t, content)
	require.Equal(t, "info", configuration.Common.LogLevel)
	require.Equal(t, "structured", configuration.Common.LogFormat)
	require.Equal(t, licenses.CommandConfiguration{
		RepositoryPath: ".",
		GitTimeout:     30 * time.Second,
		ReportFormat:   licenses.ReportFormatText,
	}, configuration.Tools.Licenses)
	require.Equal(t, licenses.DefaultCommandConfiguration(), configuration.Tools.Licenses)
}

func TestEmbeddedDefaultConfigurationReturnsCopy(t *testing.T) {
	firstContent, _ := cli.EmbeddedDefaultConfiguration()
	require.NotEmpty(t, firstContent)
	firstContent[0] = '#'

	secondContent, _ := cli.EmbeddedDefaultConfiguration()
	require.NotEqual(t, firstContent[0], secondContent[0])
}
