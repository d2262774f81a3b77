package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clienterrors "github.com/cursedclient/cursedclient/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cursedclient.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseConfigAppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig(writeConfig(t, "logging:\n  level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 50*time.Millisecond, cfg.TickInterval())

	tables := cfg.ProbeTables()
	assert.Equal(t, []string{"GetWindow", "Method22683"}, tables.WindowAccessors)
	assert.Len(t, tables.VersionTypes, 3)
}

func TestParseConfigOverridesTables(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
driver:
  max_ticks: 40
  tick_interval: 25ms
tables:
  window_accessors: ["GetMainWindow"]
  version_types:
    - name: example.VersionInfo
      version_object: ["Current"]
      name_accessors: ["DisplayName"]
`)

	cfg, err := ParseConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Driver.MaxTicks)
	assert.Equal(t, 25*time.Millisecond, cfg.TickInterval())

	tables := cfg.ProbeTables()
	assert.Equal(t, []string{"GetMainWindow"}, tables.WindowAccessors)
	assert.Equal(t, []string{"GetHandle", "Method4490"}, tables.HandleMethods, "unset slots keep defaults")
	require.Len(t, tables.VersionTypes, 1)
	assert.Equal(t, "example.VersionInfo", tables.VersionTypes[0].Name)
}

func TestParseConfigRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(writeConfig(t, "driver: [oops\n"))
	require.Error(t, err)

	var parseErr *clienterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseConfigRejectsUnknownLogLevel(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(writeConfig(t, "logging:\n  level: loud\n"))
	require.Error(t, err)

	var validationErr *clienterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Field, "level")
}

func TestParseConfigRejectsDuplicateVersionTypes(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
tables:
  version_types:
    - name: example.VersionInfo
    - name: example.VersionInfo
`)

	_, err := ParseConfig(path)
	require.Error(t, err)

	var validationErr *clienterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "duplicate")
}

func TestParseConfigRejectsInvalidDuration(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(writeConfig(t, "driver:\n  tick_interval: fast\n"))
	require.Error(t, err)

	var parseErr *clienterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidateNilConfig(t *testing.T) {
	t.Parallel()

	require.Error(t, ValidateConfig(nil))
}
