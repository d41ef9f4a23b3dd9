package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug        = "debug"
	ConfigBoardHeight  = "board-height"
	ConfigBoardWidth   = "board-width"
	ConfigFleet        = "fleet"
	ConfigMode         = "mode"
	ConfigThreads      = "threads"
	ConfigScenarioPath = "scenario-path"
	ConfigCPUProfile   = "cpu-profile"
	ConfigMemProfile   = "mem-profile"
	ConfigFile         = "config"
)

// Config is a viper instance with the salvo defaults, overridable by flags,
// SALVO_ environment variables and an optional config file.
type Config struct {
	*viper.Viper

	args []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigBoardHeight, 10)
	v.SetDefault(ConfigBoardWidth, 10)
	v.SetDefault(ConfigFleet, []int{5, 4, 3, 3, 2})
	v.SetDefault(ConfigMode, "normal")
	v.SetDefault(ConfigThreads, 1)
	v.SetDefault(ConfigScenarioPath, "./scenarios")
	v.SetDefault(ConfigCPUProfile, "")
	v.SetDefault(ConfigMemProfile, "")
}

// DefaultConfig returns a config holding only the defaults. Tests use it.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	return &Config{Viper: v}
}

// Load fills the config from the given command-line arguments, the
// environment and, if --config is given, a config file. Flags must come
// first; everything from the first positional argument on is kept for
// Args.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	setDefaults(c.Viper)

	fs := pflag.NewFlagSet("salvo", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Int(ConfigBoardHeight, 10, "number of rows on the board")
	fs.Int(ConfigBoardWidth, 10, "number of columns on the board")
	fs.IntSlice(ConfigFleet, []int{5, 4, 3, 3, 2}, "lengths of the ships in the fleet")
	fs.String(ConfigMode, "normal", "targeting mode: normal, hunting, targeting, super_aggressive, optimized")
	fs.Int(ConfigThreads, 1, "number of workers used to tally placements")
	fs.String(ConfigScenarioPath, "./scenarios", "directory holding scenario files")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	fs.String(ConfigMemProfile, "", "write a memory profile to this file")
	fs.String(ConfigFile, "", "path to a config file (yaml, toml or json)")
	fs.SetInterspersed(false)
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("salvo")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if cfgFile := c.GetString(ConfigFile); cfgFile != "" {
		c.SetConfigFile(cfgFile)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	}
	return nil
}

// AdjustRelativePaths makes relative data paths relative to the directory of
// the executable.
func (c *Config) AdjustRelativePaths(basepath string) {
	p := c.GetString(ConfigScenarioPath)
	if p != "" && !filepath.IsAbs(p) {
		c.Set(ConfigScenarioPath, filepath.Join(basepath, p))
	}
}

// Args returns the positional arguments left over after the flags.
func (c *Config) Args() []string {
	return c.args
}

// SanitizedSettings returns the settings suitable for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}

// Fleet returns the configured ship lengths.
func (c *Config) Fleet() []int {
	return c.GetIntSlice(ConfigFleet)
}
