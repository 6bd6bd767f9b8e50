package config

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"

	barcodegen "github.com/ericlevine/barcodegen"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "barcodegen"

	// DefaultErrorCorrection is the QR error correction level. M recovers
	// about 15% of the symbol.
	DefaultErrorCorrection = "M"

	// DefaultShape keeps DataMatrix symbols square.
	DefaultShape = "square"

	// DefaultAddr is the HTTP listen address of the serve command.
	DefaultAddr = ":3333"
)

// Config is the full barcodegen configuration. It is built once at startup
// and passed to the components that need it.
type Config struct {
	Render     RenderConfig     `yaml:"render"`
	QR         QRConfig         `yaml:"qr"`
	DataMatrix DataMatrixConfig `yaml:"datamatrix"`
	Unicode    UnicodeConfig    `yaml:"unicode"`
	Batch      BatchConfig      `yaml:"batch"`
	Server     ServerConfig     `yaml:"server"`
}

// RenderConfig is the image geometry, in pixels unless noted.
type RenderConfig struct {
	ModuleSize   int `yaml:"module_size"`
	EANUnit      int `yaml:"ean_unit"`
	XDim         int `yaml:"xdim"`
	BarHeight    int `yaml:"bar_height"`
	Supersample  int `yaml:"supersample"`
	MinQuietZone int `yaml:"min_quiet_zone"` // in modules or bar units
}

// QRConfig configures the QR encoder.
type QRConfig struct {
	ErrorCorrection string `yaml:"error_correction"`
}

// DataMatrixConfig configures the DataMatrix encoder.
type DataMatrixConfig struct {
	Shape string `yaml:"shape"`
}

// UnicodeConfig controls payload normalization.
type UnicodeConfig struct {
	// FoldCompatibility maps compatibility characters such as fullwidth
	// digits to ASCII before non-ASCII runes are removed.
	FoldCompatibility bool `yaml:"fold_compatibility"`
}

// BatchConfig configures batch encoding.
type BatchConfig struct {
	// Concurrency is the number of items encoded at once.
	Concurrency int `yaml:"concurrency"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// NewConfig returns a Config with every default filled in.
func NewConfig() *Config {
	d := barcodegen.DefaultRenderOptions()
	return &Config{
		Render: RenderConfig{
			ModuleSize:   d.ModuleSize,
			EANUnit:      d.EANUnit,
			XDim:         d.XDim,
			BarHeight:    d.BarHeight,
			Supersample:  d.Supersample,
			MinQuietZone: d.MinQuietZone,
		},
		QR:         QRConfig{ErrorCorrection: DefaultErrorCorrection},
		DataMatrix: DataMatrixConfig{Shape: DefaultShape},
		Batch:      BatchConfig{Concurrency: runtime.NumCPU()},
		Server:     ServerConfig{Addr: DefaultAddr},
	}
}

// XDGConfigDir returns the XDG config directory for barcodegen, e.g.
// ~/.config/barcodegen on Linux.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	r := c.Render
	if r.ModuleSize <= 0 || r.EANUnit <= 0 || r.XDim <= 0 {
		return ErrInvalidModuleSize
	}
	if r.BarHeight <= 0 {
		return ErrInvalidBarHeight
	}
	if r.Supersample <= 0 {
		return ErrInvalidSupersample
	}
	if r.MinQuietZone < 0 {
		return ErrInvalidQuietZone
	}
	switch strings.ToUpper(c.QR.ErrorCorrection) {
	case "L", "M", "Q", "H":
	default:
		return ErrInvalidErrorCorrection
	}
	switch strings.ToLower(c.DataMatrix.Shape) {
	case "square", "rectangle", "any":
	default:
		return ErrInvalidShape
	}
	if c.Batch.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return ErrInvalidAddr
	}
	return nil
}

// EncodeOptions returns the encoder options selected by c.
func (c *Config) EncodeOptions() barcodegen.EncodeOptions {
	return barcodegen.EncodeOptions{
		ErrorCorrection:   strings.ToUpper(c.QR.ErrorCorrection),
		DataMatrixShape:   strings.ToLower(c.DataMatrix.Shape),
		FoldCompatibility: c.Unicode.FoldCompatibility,
	}
}

// RenderOptions returns the image geometry selected by c.
func (c *Config) RenderOptions() barcodegen.RenderOptions {
	return barcodegen.RenderOptions{
		ModuleSize:   c.Render.ModuleSize,
		EANUnit:      c.Render.EANUnit,
		XDim:         c.Render.XDim,
		BarHeight:    c.Render.BarHeight,
		Supersample:  c.Render.Supersample,
		MinQuietZone: c.Render.MinQuietZone,
	}
}

// NewGenerator builds a barcodegen.Generator from c.
func (c *Config) NewGenerator() (*barcodegen.Generator, error) {
	return barcodegen.NewGenerator(
		barcodegen.WithEncodeOptions(c.EncodeOptions()),
		barcodegen.WithRenderOptions(c.RenderOptions()),
	)
}
