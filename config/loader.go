package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes environment variables, e.g. COMPTIME_OUT_DIR
const EnvPrefix = "COMPTIME_"

// FileNames lists configuration file names looked up in the project root
var FileNames = []string{"comptime.yaml", "comptime.yml"}

// keys maps flag and environment names to configuration keys
var keys = map[string]string{
	"max_visits": "maxVisits",
	"out_dir":    "outDir",
	"log_level":  "log.level",
	"log_format": "log.format",
}

func keyOf(name string) string {
	name = strings.ToLower(strings.ReplaceAll(name, "-", "_"))
	if key, ok := keys[name]; ok {
		return key
	}
	return name
}

// BindFlags registers configuration flags
func BindFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "configuration file, defaults to comptime.yaml in the project root")
	flags.String("traversal", "", "decorator traversal: postorder or preorder")
	flags.Int("max-visits", 0, "node visit budget per file, 0 means unlimited")
	flags.StringSlice("include", nil, "glob patterns of source files")
	flags.StringSlice("exclude", nil, "glob patterns of skipped files")
	flags.String("out-dir", "", "output directory")
	flags.String("emit", "", "output kind: ts or js")
	flags.String("target", "", "ECMAScript target of js output")
	flags.String("isolation", "", "pass isolation: program or file")
	flags.Int("concurrency", 0, "number of files processed at once")
	flags.StringSlice("decorators", nil, "glob patterns of Starlark decorator scripts")
	flags.String("report", "", "write yaml transform report to this file")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-format", "", "log format: text or json")
}

// Load loads configuration; precedence from highest: changed flags, environment, file, defaults.
// When configFile is empty, comptime.yaml is looked up in projectRoot.
func Load(configFile string, projectRoot string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configFile == "" && flags != nil {
		configFile, _ = flags.GetString("config")
	}
	if configFile == "" && projectRoot != "" {
		for _, name := range FileNames {
			candidate := filepath.Join(projectRoot, name)
			if _, err := os.Stat(candidate); err == nil {
				configFile = candidate
				break
			}
		}
	}
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return keyOf(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return keyOf(f.Name), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	ret := &Config{}
	if err := k.Unmarshal("", ret); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	ret.File = configFile
	ret.Isolation = Isolation(strings.ToLower(string(ret.Isolation)))
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}
