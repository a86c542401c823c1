// Package config manages projector configuration files.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/projector"
)

var (
	// ErrInvalidConfig is returned by Validate.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrConfigExists is returned by Loader.Init when the file is present.
	ErrConfigExists = errors.New("config: file already exists")
)

// Config represents the application configuration.
type Config struct {
	Viewport    SizeConfig   `yaml:"viewport"`
	DisplaySize SizeConfig   `yaml:"display_size"`
	Layout      LayoutConfig `yaml:"layout"`
	NudgeStep   float64      `yaml:"nudge_step"`
	Mode        string       `yaml:"mode"`
	Background  string       `yaml:"background"`
	Surface     string       `yaml:"surface,omitempty"`
	Images      []string     `yaml:"images,omitempty"`
	Output      string       `yaml:"output,omitempty"`
}

// SizeConfig is a width/height pair in viewport units.
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LayoutConfig holds the staggered layout constants.
type LayoutConfig struct {
	NominalSize float64 `yaml:"nominal_size"`
	MaxSpacingX float64 `yaml:"max_spacing_x"`
	MaxSpacingY float64 `yaml:"max_spacing_y"`
	TopMargin   float64 `yaml:"top_margin"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Viewport:    SizeConfig{Width: 800, Height: 600},
		DisplaySize: SizeConfig{Width: projector.DefaultNominalSize, Height: projector.DefaultNominalSize},
		Layout: LayoutConfig{
			NominalSize: projector.DefaultNominalSize,
			MaxSpacingX: projector.DefaultMaxSpacingX,
			MaxSpacingY: projector.DefaultMaxSpacingY,
			TopMargin:   projector.DefaultTopMargin,
		},
		NudgeStep:  projector.DefaultNudgeStep,
		Mode:       projector.ModeStack.String(),
		Background: "white",
		Output:     "composite.png",
	}
}

// Validate checks the configuration for values the engine cannot use.
func (c *Config) Validate() error {
	var problems []string
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"viewport.width", c.Viewport.Width},
		{"viewport.height", c.Viewport.Height},
		{"display_size.width", c.DisplaySize.Width},
		{"display_size.height", c.DisplaySize.Height},
		{"layout.nominal_size", c.Layout.NominalSize},
		{"layout.max_spacing_x", c.Layout.MaxSpacingX},
		{"layout.max_spacing_y", c.Layout.MaxSpacingY},
		{"layout.top_margin", c.Layout.TopMargin},
		{"nudge_step", c.NudgeStep},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			problems = append(problems, fmt.Sprintf("%s %g must be finite", f.name, f.v))
		}
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		problems = append(problems, fmt.Sprintf("viewport %gx%g must be positive", c.Viewport.Width, c.Viewport.Height))
	}
	if c.DisplaySize.Width < 1 || c.DisplaySize.Height < 1 {
		problems = append(problems, fmt.Sprintf("display_size %gx%g must be at least 1x1", c.DisplaySize.Width, c.DisplaySize.Height))
	}
	if c.NudgeStep <= 0 {
		problems = append(problems, fmt.Sprintf("nudge_step %g must be positive", c.NudgeStep))
	}
	if c.Layout.MaxSpacingX < 0 || c.Layout.MaxSpacingY < 0 {
		problems = append(problems, "layout spacing must not be negative")
	}
	if _, err := projector.ParseMode(c.Mode); err != nil {
		problems = append(problems, fmt.Sprintf("mode %q is not one of stack, multiply, overlap", c.Mode))
	}
	if _, err := parseBackground(c.Background); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Options converts the configuration into engine options.
// Call Validate first; invalid fields fall back to defaults.
func (c *Config) Options() []projector.Option {
	mode, _ := projector.ParseMode(c.Mode)
	bg, err := parseBackground(c.Background)
	if err != nil {
		bg = projector.BackgroundWhite
	}
	return []projector.Option{
		projector.WithViewport(projector.Sz(c.Viewport.Width, c.Viewport.Height)),
		projector.WithDisplaySize(projector.Sz(c.DisplaySize.Width, c.DisplaySize.Height)),
		projector.WithLayout(projector.LayoutConfig{
			NominalSize: c.Layout.NominalSize,
			MaxSpacingX: c.Layout.MaxSpacingX,
			MaxSpacingY: c.Layout.MaxSpacingY,
			TopMargin:   c.Layout.TopMargin,
		}),
		projector.WithNudgeStep(c.NudgeStep),
		projector.WithMode(mode),
		projector.WithBackground(bg),
	}
}

func parseBackground(s string) (color.NRGBA, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "white":
		return projector.BackgroundWhite, nil
	case "black":
		return projector.BackgroundBlack, nil
	default:
		return color.NRGBA{}, fmt.Errorf("background %q is not white or black", s)
	}
}
