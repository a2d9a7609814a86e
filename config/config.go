package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/soocke/pixel-eraser-go/domain/inpaint"
	"github.com/soocke/pixel-eraser-go/domain/selection"
)

// Selection modes.
const (
	ModeSingle = "single"
	ModeMulti  = "multi"
)

// Inpainting methods.
const (
	MethodTelea = "telea"
	MethodNS    = "ns"
)

// EnvPrefix prefixes every environment override, e.g. PIXEL_ERASER_INPUT.
const EnvPrefix = "PIXEL_ERASER_"

// Config holds runtime configuration for a single erase run.
// Fields may be loaded from a JSON or YAML file, overridden by environment
// variables and finally by command-line flags.
type Config struct {
	Debug bool `json:"debug" yaml:"debug"`

	InputPath  string `json:"input_path" yaml:"input_path"`
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Selection and inpainting
	Mode   string  `json:"mode" yaml:"mode"`
	Method string  `json:"method" yaml:"method"`
	Radius float64 `json:"radius" yaml:"radius"`

	JPEGQuality int `json:"jpeg_quality" yaml:"jpeg_quality"`

	// Preview window limits; larger images are scaled down for display only.
	MaxPreviewW int `json:"max_preview_w" yaml:"max_preview_w"`
	MaxPreviewH int `json:"max_preview_h" yaml:"max_preview_h"`

	// Interval of the debug memory logger, only used when Debug is set.
	MemLogSeconds int `json:"mem_log_seconds" yaml:"mem_log_seconds"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:         false,
		InputPath:     "img/target.png",
		OutputPath:    "opencv9_result.jpg",
		Mode:          ModeSingle,
		Method:        MethodTelea,
		Radius:        3,
		JPEGQuality:   95,
		MaxPreviewW:   1280,
		MaxPreviewH:   800,
		MemLogSeconds: 2,
	}
}

// Validate clamps numeric values to safe ranges and normalizes mode and method
// aliases to their canonical names. An unknown mode or method is left as given
// and reported in the returned error.
func (c *Config) Validate() error {
	d := DefaultConfig()
	var errs []error
	c.Mode = strings.TrimSpace(c.Mode)
	if c.Mode == "" {
		c.Mode = d.Mode
	}
	if m, err := selection.ParseMode(c.Mode); err != nil {
		errs = append(errs, err)
	} else {
		c.Mode = m.String()
	}
	c.Method = strings.TrimSpace(c.Method)
	if m, err := inpaint.ParseMethod(c.Method); err != nil {
		errs = append(errs, err)
	} else {
		c.Method = m.String()
	}
	if c.Radius <= 0 {
		c.Radius = d.Radius
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		c.JPEGQuality = d.JPEGQuality
	}
	if c.MaxPreviewW < 50 {
		c.MaxPreviewW = d.MaxPreviewW
	}
	if c.MaxPreviewH < 50 {
		c.MaxPreviewH = d.MaxPreviewH
	}
	if c.MemLogSeconds <= 0 {
		c.MemLogSeconds = d.MemLogSeconds
	}
	if strings.TrimSpace(c.InputPath) == "" {
		c.InputPath = d.InputPath
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		c.OutputPath = d.OutputPath
	}
	return errors.Join(errs...)
}

// Load attempts to read configuration from the given file path. Files ending in
// .yaml or .yml are decoded as YAML, everything else as JSON. If the file does
// not exist it returns DefaultConfig(). On decode error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path, JSON or YAML by extension.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadEnvFile reads KEY=VALUE pairs from a dotenv file. A missing file yields an empty map.
func ReadEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	vals, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	return vals, nil
}

// ApplyEnv overrides fields from PIXEL_ERASER_* variables resolved through lookup.
// Unparsable numeric or boolean values are skipped.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		return
	}
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return "", false
		}
		v = strings.TrimSpace(v)
		return v, v != ""
	}
	if v, ok := get("INPUT"); ok {
		c.InputPath = v
	}
	if v, ok := get("OUTPUT"); ok {
		c.OutputPath = v
	}
	if v, ok := get("MODE"); ok {
		c.Mode = v
	}
	if v, ok := get("METHOD"); ok {
		c.Method = v
	}
	if v, ok := get("RADIUS"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Radius = f
		}
	}
	if v, ok := get("JPEG_QUALITY"); ok {
		if i, err := strconv.Atoi(v); err == nil {
			c.JPEGQuality = i
		}
	}
	if v, ok := get("MAX_PREVIEW_W"); ok {
		if i, err := strconv.Atoi(v); err == nil {
			c.MaxPreviewW = i
		}
	}
	if v, ok := get("MAX_PREVIEW_H"); ok {
		if i, err := strconv.Atoi(v); err == nil {
			c.MaxPreviewH = i
		}
	}
	if v, ok := get("MEM_LOG_SECONDS"); ok {
		if i, err := strconv.Atoi(v); err == nil {
			c.MemLogSeconds = i
		}
	}
	if v, ok := get("DEBUG"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
	_ = c.Validate()
}

// EnvLookup resolves variables from the process environment first and falls
// back to values read from a dotenv file.
func EnvLookup(file map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
