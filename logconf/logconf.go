package logconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/technoplato/tracelog/logger"
)

// Format identifies a supported configuration file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Load reads a configuration file and returns the partial logger options it
// declares. The format is detected from the file extension (.json, .yaml,
// .yml, .toml).
func Load(path string) (logger.Options, error) {
	format, err := detectFormat(path)
	if err != nil {
		return logger.Options{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return logger.Options{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data, format)
}

// Parse extracts logger options from raw configuration bytes in the given
// format. Keys absent from the data leave the corresponding option unset.
func Parse(data []byte, format Format) (logger.Options, error) {
	parser, err := parserFor(format)
	if err != nil {
		return logger.Options{}, err
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return logger.Options{}, fmt.Errorf("failed to parse config: %w", err)
	}

	var opts logger.Options
	if k.Exists("level") {
		lvl, err := logger.ParseLevel(k.String("level"))
		if err != nil {
			return logger.Options{}, err
		}
		opts.Level = &lvl
	}
	if k.Exists("enabled") {
		enabled := k.Bool("enabled")
		opts.Enabled = &enabled
	}
	if k.Exists("colorize") {
		colorize := k.Bool("colorize")
		opts.Colorize = &colorize
	}
	return opts, nil
}

// detectFormat maps a file extension to its Format.
func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
}

func parserFor(format Format) (koanf.Parser, error) {
	switch format {
	case FormatJSON:
		return kjson.Parser(), nil
	case FormatYAML:
		return kyaml.Parser(), nil
	case FormatTOML:
		return tomlParser{}, nil
	}
	return nil, fmt.Errorf("unsupported config format %q", format)
}
