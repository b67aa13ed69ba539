package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/RenatoLagos/Create-video/internal/domain/chunking"
)

// Template is one named chunking configuration. Zero-valued fields fall
// back to the documented defaults when converted.
type Template struct {
	MaxChars          int      `mapstructure:"max_chars"`
	MinDuration       float64  `mapstructure:"min_duration"`
	FPS               int      `mapstructure:"fps"`
	GapFrames         int      `mapstructure:"gap_frames"`
	Mode              string   `mapstructure:"mode"` // word (default) or char
	WordBreakPriority []string `mapstructure:"word_break_priority"`
	AnimationSeconds  float64  `mapstructure:"animation_seconds"`
}

// ChunkConfig converts the template into the chunker's configuration.
func (t Template) ChunkConfig() chunking.Config {
	cfg := chunking.Config{
		MaxChars:    t.MaxChars,
		MinDuration: t.MinDuration,
		FPS:         t.FPS,
		GapFrames:   t.GapFrames,
	}
	if strings.EqualFold(t.Mode, "char") {
		cfg.Mode = chunking.ModeChar
	}
	for _, s := range t.WordBreakPriority {
		for _, r := range s {
			cfg.WordBreakPriority = append(cfg.WordBreakPriority, r)
			break
		}
	}
	return cfg.WithDefaults()
}

// Set is the template registry: built-ins, optionally overlaid by a YAML
// file loaded with viper.
type Set struct {
	templates map[string]Template
	log       zerolog.Logger
}

// builtins mirror the style presets the rendering surface knows about. The
// lower-thirds and elegant templates chunk by characters with break-priority
// back-off instead of whole words.
func builtins() map[string]Template {
	return map[string]Template{
		"default": {
			MaxChars:         chunking.DefaultMaxChars,
			MinDuration:      chunking.DefaultMinDuration,
			FPS:              chunking.DefaultFPS,
			AnimationSeconds: 0.3,
		},
		"lower-thirds": {
			MaxChars:          42,
			MinDuration:       chunking.DefaultMinDuration,
			FPS:               chunking.DefaultFPS,
			Mode:              "char",
			WordBreakPriority: []string{" ", ",", ".", ";", ":"},
			AnimationSeconds:  0.3,
		},
		"elegant": {
			MaxChars:          36,
			MinDuration:       1.5,
			FPS:               chunking.DefaultFPS,
			Mode:              "char",
			WordBreakPriority: []string{",", ".", " "},
			AnimationSeconds:  0.5,
		},
	}
}

// Load builds the template set. An empty path keeps the built-ins only; a
// file with a `templates:` map overrides or adds entries by name.
func Load(path string, log zerolog.Logger) (*Set, error) {
	set := &Set{templates: builtins(), log: log}
	if path == "" {
		return set, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read templates file: %w", err)
	}

	var file struct {
		Templates map[string]Template `mapstructure:"templates"`
	}
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("parse templates file: %w", err)
	}
	for name, t := range file.Templates {
		set.templates[strings.ToLower(name)] = t
	}
	log.Debug().Int("templates", len(set.templates)).Str("file", path).Msg("config: templates loaded")
	return set, nil
}

// Get returns the named template, falling back to default (with a warning)
// for unknown names.
func (s *Set) Get(name string) Template {
	if t, ok := s.templates[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	s.log.Warn().Str("template", name).Msg("config: unknown template, using default")
	return s.templates["default"]
}

// Names lists registered template names.
func (s *Set) Names() []string {
	out := make([]string, 0, len(s.templates))
	for name := range s.templates {
		out = append(out, name)
	}
	return out
}
