package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/qiniu/x/log"

	"github.com/zephyrtronium/plotfn"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

// Config holds the settings of a run. A config file sets them first, then
// flags override whatever they name.
type Config struct {
	Window plotfn.Window `toml:"window"`
	// Format is the output format, text or json.
	Format string `toml:"format"`
	// Verb formats numbers in text output.
	Verb string `toml:"verb"`
	// LogLevel is the qiniu log output level.
	LogLevel int `toml:"log_level"`
	// RightAssocPow parses ** as right-associative.
	RightAssocPow bool `toml:"right_assoc_pow"`
}

func defaultConfig() Config {
	return Config{
		Window:   plotfn.Window{Min: -10, Max: 10, Step: 0.1},
		Format:   formatText,
		Verb:     "%g",
		LogLevel: log.Linfo,
	}
}

// loadConfig reads a TOML config file over the defaults. An empty path gives
// the defaults.
func loadConfig(path string) (Config, error) {
	conf := defaultConfig()
	if path == "" {
		return conf, nil
	}
	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return conf, errors.Wrapf(err, "reading config %s", path)
	}
	for _, k := range md.Undecoded() {
		log.Warnf("config %s: unknown key %s", path, k)
	}
	return conf, nil
}

func (c *Config) validate() error {
	switch c.Format {
	case formatText, formatJSON:
	default:
		return errors.Errorf("unknown output format %q", c.Format)
	}
	if c.Verb == "" {
		return errors.New("empty number format")
	}
	return errors.Wrap(c.Window.Validate(), "bad window")
}

func (c *Config) parseOptions() []plotfn.ParseOption {
	if c.RightAssocPow {
		return []plotfn.ParseOption{plotfn.RightAssocPow()}
	}
	return nil
}
