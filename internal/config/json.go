package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// settingsFile is the on-disk shape of the -c settings file. Unknown keys
// are rejected so a misspelt option fails loudly instead of being ignored.
type settingsFile struct {
	App struct {
		Version  string `json:"version" yaml:"version"`
		LogLevel string `json:"log_level" yaml:"log_level"`
	} `json:"app" yaml:"app"`

	Document struct {
		Path   string `json:"path" yaml:"path"`
		Format string `json:"format" yaml:"format"`
		Strict bool   `json:"strict" yaml:"strict"`
	} `json:"document" yaml:"document"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server" yaml:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Workers struct {
		Watch    bool     `json:"watch" yaml:"watch"`
		Debounce Duration `json:"debounce" yaml:"debounce"`
	} `json:"workers" yaml:"workers"`

	Output struct {
		Mode string `json:"mode" yaml:"mode"`
		Path string `json:"path" yaml:"path"`
	} `json:"output" yaml:"output"`
}

// parseJSON reads the settings file. Files ending in .yaml or .yml are
// read as YAML, everything else as JSON.
func parseJSON(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading settings file: %w", err)
	}
	defer f.Close()

	var file settingsFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		err = dec.Decode(&file)
	default:
		dec := json.NewDecoder(f)
		dec.DisallowUnknownFields()
		err = dec.Decode(&file)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding settings file %s: %w", path, err)
	}

	return file.structured(), nil
}

func (f *settingsFile) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  f.App.Version,
			LogLevel: f.App.LogLevel,
		},
		Document: Document{
			Path:   f.Document.Path,
			Format: f.Document.Format,
			Strict: f.Document.Strict,
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    f.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
		},
		Workers: Workers{
			Watch:    f.Workers.Watch,
			Debounce: time.Duration(f.Workers.Debounce),
		},
		Output: Output{
			Mode: f.Output.Mode,
			Path: f.Output.Path,
		},
	}
}

// Duration accepts either a Go duration string ("250ms", "1m30s") or a
// number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		return d.parse(s)
	}

	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("duration must be a string or an integer: %s", b)
	}
	*d = Duration(n)
	return nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var n int64
	if value.Tag == "!!int" && value.Decode(&n) == nil {
		*d = Duration(n)
		return nil
	}
	return d.parse(value.Value)
}

func (d *Duration) parse(s string) error {
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
