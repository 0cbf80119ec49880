// Package config resolves the simulator's CLI contract (spec.md §6):
// `-f<F> -a<algo> -o<flags> <input_file> <rand_file>`, with CLI flags as
// the authoritative source and an optional YAML file layering defaults,
// following internal/config.go's viper pattern from the teacher repo.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tuannm99/vmsim/internal/pager"
	"github.com/tuannm99/vmsim/internal/report"
)

// Config is the fully resolved set of inputs the simulator needs to run.
type Config struct {
	Frames     int
	Algorithm  pager.Algorithm
	Report     report.Flags
	InputPath  string
	RandomPath string
}

// fileDefaults is the shape of the optional -config YAML file. Any field
// the CLI flags already set takes precedence over these.
type fileDefaults struct {
	Frames    int    `mapstructure:"frames"`
	Algorithm string `mapstructure:"algorithm"`
	Options   string `mapstructure:"options"`
}

// Parse parses args (typically os.Args[1:]) into a Config, or returns an
// error describing a missing/malformed flag or a wrong positional-argument
// count, ready to be printed to stderr by the caller.
func Parse(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("vmsim", pflag.ContinueOnError)
	frames := fs.IntP("frames", "f", 0, "number of physical frames")
	algo := fs.StringP("algo", "a", "", "page replacement algorithm: f|c|e|a|w|r")
	opts := fs.StringP("options", "o", "", "report flags, subset of PFS")
	cfgPath := fs.String("config", "", "optional YAML file providing defaults for -f/-a/-o")

	// pflag reads a single-dash word as a cluster of shorthands, so the
	// -config spelling is rewritten to --config before parsing.
	normalized := make([]string, len(args))
	for i, a := range args {
		if a == "-config" || strings.HasPrefix(a, "-config=") {
			a = "-" + a
		}
		normalized[i] = a
	}

	if err := fs.Parse(normalized); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var defaults fileDefaults
	if *cfgPath != "" {
		d, err := loadDefaults(*cfgPath)
		if err != nil {
			return nil, err
		}
		defaults = *d
	}

	if !fs.Changed("frames") && defaults.Frames > 0 {
		*frames = defaults.Frames
	}
	if !fs.Changed("algo") && defaults.Algorithm != "" {
		*algo = defaults.Algorithm
	}
	if !fs.Changed("options") && defaults.Options != "" {
		*opts = defaults.Options
	}

	if *frames <= 0 {
		return nil, fmt.Errorf("config: -f (frame count) is required and must be positive")
	}
	if len(*algo) != 1 {
		return nil, fmt.Errorf("config: -a (algorithm) is required and must be a single character")
	}
	if *opts == "" && !fs.Changed("options") {
		return nil, fmt.Errorf("config: -o (report flags) is required")
	}

	positional := fs.Args()
	switch {
	case len(positional) < 2:
		return nil, fmt.Errorf("config: please give an input file and a random file")
	case len(positional) > 2:
		return nil, fmt.Errorf("config: please give only one input file and one random file")
	}

	return &Config{
		Frames:     *frames,
		Algorithm:  pager.Algorithm((*algo)[0]),
		Report:     report.ParseFlags(*opts),
		InputPath:  positional[0],
		RandomPath: positional[1],
	}, nil
}

func loadDefaults(path string) (*fileDefaults, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var d fileDefaults
	if err := v.Unmarshal(&d); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return &d, nil
}
