package dataset

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format names a snapshot encoding.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

//go:embed nagpur.yaml
var nagpur []byte

// FormatOf maps a file extension to its Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads and decodes the snapshot stored at path.
func Load(path string) (*Snapshot, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open dataset")
	}
	defer f.Close()

	snap, err := Decode(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	return snap, nil
}

// Decode reads one snapshot document from r.
func Decode(r io.Reader, format Format) (*Snapshot, error) {
	var snap Snapshot
	switch format {
	case JSON:
		if err := json.NewDecoder(r).Decode(&snap); err != nil {
			return nil, errors.Wrap(err, "decode json")
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&snap); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "decode yaml")
		}
	case TOML:
		if _, err := toml.NewDecoder(r).Decode(&snap); err != nil {
			return nil, errors.Wrap(err, "decode toml")
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &snap, nil
}

// Default returns a fresh copy of the built-in Nagpur sample.
func Default() *Snapshot {
	snap, err := Decode(bytes.NewReader(nagpur), YAML)
	if err != nil {
		panic(errors.Wrap(err, "embedded dataset"))
	}

	return snap
}
