// Package config loads the JSON-shaped settings document of spec.md
// §6, ported from original_source/sudachi/src/config.rs: a raw
// ConfigBuilder decoded straight off the wire, resolved against a
// resource directory into a Config plugin configurations are handed
// to as opaque JSON.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	defaultResourceDir = "resources"
	defaultCharDefFile = "char.def"
)

// Config is the resolved settings a Dictionary is built from: every
// path already joined against resourceDir, every plugin list already
// defaulted to empty.
type Config struct {
	ResourceDir             string
	SystemDict              string // empty if unset
	UserDicts               []string
	CharacterDefinitionFile string

	ConnectionCostPlugins []json.RawMessage
	InputTextPlugins      []json.RawMessage
	OOVProviderPlugins    []json.RawMessage
	PathRewritePlugins    []json.RawMessage
}

// Clone returns a copy of c whose slice fields share no backing array
// with the original, so a caller can freely append to or reorder a
// clone's plugin lists without the original ever observing the change.
func (c *Config) Clone() *Config {
	out := *c
	out.UserDicts = append([]string(nil), c.UserDicts...)
	out.ConnectionCostPlugins = append([]json.RawMessage(nil), c.ConnectionCostPlugins...)
	out.InputTextPlugins = append([]json.RawMessage(nil), c.InputTextPlugins...)
	out.OOVProviderPlugins = append([]json.RawMessage(nil), c.OOVProviderPlugins...)
	out.PathRewritePlugins = append([]json.RawMessage(nil), c.PathRewritePlugins...)
	return &out
}

// ResolvePath expands the $exe/$cfg path-variable prefixes of spec.md
// §6: $exe becomes the running executable's directory, $cfg becomes
// ResourceDir.
func (c *Config) ResolvePath(path string) (string, error) {
	switch {
	case hasPrefix(path, "$exe"):
		dir, err := exeDir()
		if err != nil {
			return "", err
		}
		return dir + path[len("$exe"):], nil
	case hasPrefix(path, "$cfg"):
		return c.ResourceDir + path[len("$cfg"):], nil
	default:
		return path, nil
	}
}

// CompletePath joins a possibly-relative path against ResourceDir;
// absolute paths pass through unchanged.
func (c *Config) CompletePath(path string) string {
	return joinIfRelative(c.ResourceDir, path)
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

func exeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

func joinIfRelative(resourceDir, path string) string {
	if path == "" {
		return path
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(resourceDir, path)
}

// rawConfig mirrors the settings document's on-the-wire field names
// (spec.md §6): callers must use these JSON keys verbatim, matching
// the reference implementation's ConfigBuilder.
type rawConfig struct {
	ResourcePath            *string           `json:"resourcePath"`
	SystemDict              *string           `json:"systemDict"`
	UserDict                []string          `json:"userDict"`
	CharacterDefinitionFile *string           `json:"characterDefinitionFile"`
	ConnectionCostPlugin    []json.RawMessage `json:"connectionCostPlugin"`
	InputTextPlugin         []json.RawMessage `json:"inputTextPlugin"`
	OOVProviderPlugin       []json.RawMessage `json:"oovProviderPlugin"`
	PathRewritePlugin       []json.RawMessage `json:"pathRewritePlugin"`
}

// Builder accumulates settings from a decoded document plus explicit
// overrides (resource path, system dictionary, user dictionaries),
// mirroring the reference implementation's ConfigBuilder/Config::new
// precedence: explicit overrides beat the config file.
type Builder struct {
	raw rawConfig
}

// FromBytes decodes a JSON settings document.
func FromBytes(data []byte) (*Builder, error) {
	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return &Builder{raw: raw}, nil
}

// FromFile decodes a JSON settings document from disk.
func FromFile(path string) (*Builder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromBytes(data)
}

// Empty returns a Builder with every field unset, equivalent to
// decoding "{}".
func Empty() *Builder { return &Builder{} }

// WithSystemDict overrides the system dictionary path.
func (b *Builder) WithSystemDict(path string) *Builder {
	b.raw.SystemDict = &path
	return b
}

// WithUserDict appends a user dictionary path.
func (b *Builder) WithUserDict(path string) *Builder {
	b.raw.UserDict = append(b.raw.UserDict, path)
	return b
}

// WithResourcePath overrides the resource directory.
func (b *Builder) WithResourcePath(path string) *Builder {
	b.raw.ResourcePath = &path
	return b
}

// Build resolves every path against the chosen resource directory and
// defaults every plugin list to empty, producing the final Config.
func (b *Builder) Build() (*Config, error) {
	resourceDir := defaultResourceDir
	if b.raw.ResourcePath != nil {
		resourceDir = *b.raw.ResourcePath
	}

	cfg := &Config{
		ResourceDir:           resourceDir,
		UserDicts:             make([]string, 0, len(b.raw.UserDict)),
		ConnectionCostPlugins: b.raw.ConnectionCostPlugin,
		InputTextPlugins:      b.raw.InputTextPlugin,
		OOVProviderPlugins:    b.raw.OOVProviderPlugin,
		PathRewritePlugins:    b.raw.PathRewritePlugin,
	}

	if b.raw.SystemDict != nil {
		cfg.SystemDict = joinIfRelative(resourceDir, *b.raw.SystemDict)
	}
	for _, p := range b.raw.UserDict {
		cfg.UserDicts = append(cfg.UserDicts, joinIfRelative(resourceDir, p))
	}

	charDef := defaultCharDefFile
	if b.raw.CharacterDefinitionFile != nil {
		charDef = *b.raw.CharacterDefinitionFile
	}
	cfg.CharacterDefinitionFile = joinIfRelative(resourceDir, charDef)

	return cfg, nil
}

// Load reads a settings document from configFile (or an empty
// document if configFile is empty) and layers resourceDir/dictPath
// overrides on top before resolving, mirroring spec.md §6's
// precedence: explicit argument > config file > built-in default.
func Load(configFile, resourceDir, dictPath string) (*Config, error) {
	var b *Builder
	var err error
	if configFile == "" {
		b = Empty()
	} else {
		b, err = FromFile(configFile)
		if err != nil {
			return nil, err
		}
	}
	if resourceDir != "" {
		b = b.WithResourcePath(resourceDir)
	}
	if dictPath != "" {
		b = b.WithSystemDict(dictPath)
	}
	return b.Build()
}

// MinimalAt returns the smallest usable config for resourceDir: just
// the character-definition file and a SimpleOovPlugin fallback, for
// tests and ad hoc tokenization without a full settings document.
func MinimalAt(resourceDir string) (*Config, error) {
	cfg := &Config{
		ResourceDir:             resourceDir,
		CharacterDefinitionFile: joinIfRelative(resourceDir, defaultCharDefFile),
	}
	oov, err := json.Marshal(map[string]any{
		"class": "SimpleOovPlugin",
		"oovPOS": []string{"名詞", "普通名詞", "一般", "*", "*", "*"},
		"leftId": 0, "rightId": 0, "cost": 30000,
	})
	if err != nil {
		return nil, err
	}
	cfg.OOVProviderPlugins = []json.RawMessage{oov}
	return cfg, nil
}
