package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/urbanplan/config"
	"github.com/katalvlaran/urbanplan/planerr"
	"github.com/katalvlaran/urbanplan/planner"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "urbanplan.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, config.OutputText, cfg.Output)
	assert.Equal(t, 50, cfg.Budget)
	assert.Equal(t, 8, cfg.Sensors)
	assert.Equal(t, 25.0, cfg.Threshold)
	assert.Equal(t, "N1", cfg.Route.Start)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
dataset = "city.yaml"
budget = 80

[route]
start = "N2"
end = "N9"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "city.yaml", cfg.Dataset)
	assert.Equal(t, 80, cfg.Budget)
	assert.Equal(t, config.Route{Start: "N2", End: "N9"}, cfg.Route)
	// Untouched keys keep their defaults.
	assert.Equal(t, 8, cfg.Sensors)
	assert.Equal(t, config.OutputText, cfg.Output)
}

func TestLoad_UnknownKey(t *testing.T) {
	_, err := config.Load(writeFile(t, "budjet = 10\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBindFlags(t *testing.T) {
	cfg := config.Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.BindFlags(fs)

	require.NoError(t, fs.Parse([]string{"--budget", "12", "-o", "json", "--from", "N3", "-v"}))
	assert.Equal(t, 12, cfg.Budget)
	assert.Equal(t, config.OutputJSON, cfg.Output)
	assert.Equal(t, "N3", cfg.Route.Start)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 8, cfg.Sensors)
}

func TestOverlay_FlagsBeatFile(t *testing.T) {
	fileCfg, err := config.Load(writeFile(t, "budget = 80\nsensors = 6\n"))
	require.NoError(t, err)

	flagCfg := config.Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagCfg.BindFlags(fs)
	fs.String("config", "", "")
	require.NoError(t, fs.Parse([]string{"--sensors", "10", "--config", "x.toml"}))

	merged, err := config.Overlay(fileCfg, fs)
	require.NoError(t, err)
	assert.Equal(t, 80, merged.Budget)
	assert.Equal(t, 10, merged.Sensors)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"output":    func(c *config.Config) { c.Output = "xml" },
		"budget":    func(c *config.Config) { c.Budget = -1 },
		"sensors":   func(c *config.Config) { c.Sensors = 15 },
		"no sensor": func(c *config.Config) { c.Sensors = 0 },
		"threshold": func(c *config.Config) { c.Threshold = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, config.ErrInvalid)
			assert.True(t, planerr.Is(err, planerr.InvalidInput))
		})
	}
}

func TestParams(t *testing.T) {
	cfg := config.Default()
	cfg.Route.End = "N9"
	assert.Equal(t, planner.Params{
		RouteStart: "N1",
		RouteEnd:   "N9",
		Budget:     50,
		Sensors:    8,
		Threshold:  25,
	}, cfg.Params())
}
