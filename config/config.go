package config

import (
	"fmt"
	"strings"

	"github.com/fatih/structs"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// Config only tunes the diagnostics channel on stderr. The listing itself is
// deliberately not configurable: it always targets the current working
// directory and always renders the same format.
type Config struct {
	LogLevel string `koanf:"log.level" short:"l" description:"stderr verbosity: trace, debug, info, warn, error or disabled"`

	Level zerolog.Level `koanf:"-"`
}

func Default() Config {
	return Config{
		LogLevel: zerolog.LevelWarnValue,
	}
}

func (c *Config) Validate() error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	c.Level = lvl
	return nil
}

// RegisterFlags derives the command line flags from the koanf, short and
// description tags of cfg's fields. Flag names mirror the config keys with
// dots replaced by dashes (log.level -> --log-level); cfg provides the
// default values shown in the help text.
func RegisterFlags(set *pflag.FlagSet, cfg Config) {
	for _, field := range structs.Fields(cfg) {
		key := field.Tag("koanf")
		if key == "" || key == "-" {
			continue
		}

		name := strings.ReplaceAll(key, ".", "-")
		short := field.Tag("short")
		usage := field.Tag("description")

		switch v := field.Value().(type) {
		case string:
			set.StringP(name, short, v, usage)
		case bool:
			set.BoolP(name, short, v, usage)
		case int:
			set.IntP(name, short, v, usage)
		default:
			panic(fmt.Sprintf("unsupported flag type %T for config key %s", v, key))
		}
	}
}
