package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/namesetl/pkg/namesetl"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `source_url: https://example.com/names.csv
csv_path: data/names.csv
store_path: data/names.db
skip_header: true
timeout: 10m
retries: 3
server:
  addr: "127.0.0.1:9090"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://example.com/names.csv", cfg.SourceURL)
	assert.Equal(t, "data/names.csv", cfg.CSVPath)
	assert.Equal(t, "data/names.db", cfg.StorePath)
	require.NotNil(t, cfg.SkipHeader)
	assert.True(t, *cfg.SkipHeader)
	require.NotNil(t, cfg.Retries)
	assert.Equal(t, 3, *cfg.Retries)
	assert.Equal(t, "10m", cfg.Timeout)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)

	d, err := cfg.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, d)
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("store_path: x.db\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "x.db", cfg.StorePath)
	assert.Nil(t, cfg.SkipHeader)
	assert.Nil(t, cfg.Retries)
	assert.Empty(t, cfg.Timeout)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("retries: [unclosed\n"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), nil, 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, &ProjectConfig{}, cfg)
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	retries := 2
	want := &ProjectConfig{StorePath: "names.db", Retries: &retries, Timeout: "1m"}

	require.NoError(t, Save(dir, want))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTimeoutDuration_Invalid(t *testing.T) {
	cfg := &ProjectConfig{Timeout: "soon"}
	_, err := cfg.TimeoutDuration()
	assert.ErrorContains(t, err, "invalid timeout")
}

func TestParseEnv(t *testing.T) {
	t.Setenv("NAMESETL_DB", "env.db")
	t.Setenv("NAMESETL_SKIP_HEADER", "false")
	t.Setenv("NAMESETL_TIMEOUT", "45s")
	t.Setenv("NAMESETL_RETRIES", "4")

	var cfg EnvConfig
	require.NoError(t, ParseEnv(&cfg))

	assert.Equal(t, "env.db", cfg.StorePath)
	require.NotNil(t, cfg.SkipHeader)
	assert.False(t, *cfg.SkipHeader)
	require.NotNil(t, cfg.Timeout)
	assert.Equal(t, 45*time.Second, *cfg.Timeout)
	require.NotNil(t, cfg.Retries)
	assert.Equal(t, 4, *cfg.Retries)
	assert.Empty(t, cfg.SourceURL)
}

func TestParseEnv_Error(t *testing.T) {
	t.Setenv("NAMESETL_RETRIES", "several")

	var cfg EnvConfig
	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadEnv_DotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("NAMESETL_CSV_PATH=from-dotenv.csv\nNAMESETL_ADDR=:9999\n"), 0644))
	t.Setenv("NAMESETL_ADDR", ":7000")
	t.Cleanup(func() { os.Unsetenv("NAMESETL_CSV_PATH") })

	cfg, err := LoadEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.csv", cfg.CSVPath)
	assert.Equal(t, ":7000", cfg.Addr, "process environment wins over .env")
}

func TestLoadEnv_MissingDotenvIsFine(t *testing.T) {
	_, err := LoadEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err)
}

func TestMerge_Precedence(t *testing.T) {
	yamlRetries := 1
	envRetries := 5
	yamlSkip := true
	envTimeout := 5 * time.Second

	project := &ProjectConfig{
		SourceURL:  "https://yaml.example/names.csv",
		StorePath:  "yaml.db",
		SkipHeader: &yamlSkip,
		Retries:    &yamlRetries,
		Timeout:    "1m",
	}
	envCfg := &EnvConfig{
		StorePath: "env.db",
		Retries:   &envRetries,
		Timeout:   &envTimeout,
	}

	s, err := Merge(project, envCfg)
	require.NoError(t, err)

	assert.Equal(t, "https://yaml.example/names.csv", s.SourceURL)
	assert.Equal(t, namesetl.DefaultCSVPath, s.CSVPath)
	assert.Equal(t, "env.db", s.StorePath)
	require.NotNil(t, s.SkipHeader)
	assert.True(t, *s.SkipHeader)
	assert.Equal(t, 5, s.Retries)
	assert.Equal(t, 5*time.Second, s.Timeout)
	assert.Equal(t, namesetl.DefaultServerAddr, s.Addr)
}

func TestMerge_Defaults(t *testing.T) {
	s, err := Merge(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
	assert.Nil(t, s.SkipHeader)
}

func TestMerge_InvalidTimeout(t *testing.T) {
	_, err := Merge(&ProjectConfig{Timeout: "forever"}, nil)
	assert.Error(t, err)
}
