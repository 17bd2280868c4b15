package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/msalah0e/archmap/internal/interact"
)

// ProjectFile is the per-directory config file looked up from the working
// directory upwards.
const ProjectFile = ".archmap.toml"

// Config holds archmap configuration.
type Config struct {
	UI        UIConfig        `toml:"ui"`
	Highlight HighlightConfig `toml:"highlight"`
	Diagram   DiagramConfig   `toml:"diagram"`
	Serve     ServeConfig     `toml:"serve"`
}

// UIConfig controls display options.
type UIConfig struct {
	Emoji bool `toml:"emoji"`
	Color bool `toml:"color"`
}

// HighlightConfig controls how non-highlighted elements recede.
type HighlightConfig struct {
	NodeDimOpacity float64 `toml:"node_dim_opacity"`
	EdgeDimOpacity float64 `toml:"edge_dim_opacity"`
	ElevatedZ      int     `toml:"elevated_z"`
}

// DiagramConfig controls where the diagram is loaded from.
type DiagramConfig struct {
	OverlayDir string `toml:"overlay_dir"` // empty means <config dir>/diagrams
}

// ServeConfig controls the local HTTP server.
type ServeConfig struct {
	Addr      string `toml:"addr"`
	LogLevel  string `toml:"log_level"`  // "debug", "info", "warn", "error"
	LogFormat string `toml:"log_format"` // "text", "json"
}

// Default returns the default configuration.
func Default() *Config {
	opts := interact.DefaultOptions()
	return &Config{
		UI: UIConfig{Emoji: true, Color: true},
		Highlight: HighlightConfig{
			NodeDimOpacity: opts.NodeDimOpacity,
			EdgeDimOpacity: opts.EdgeDimOpacity,
			ElevatedZ:      opts.ElevatedZ,
		},
		Serve: ServeConfig{Addr: "127.0.0.1:8420", LogLevel: "info", LogFormat: "text"},
	}
}

// Options converts the highlight section into interaction options.
func (c *Config) Options() interact.Options {
	return interact.Options{
		NodeDimOpacity: c.Highlight.NodeDimOpacity,
		EdgeDimOpacity: c.Highlight.EdgeDimOpacity,
		ElevatedZ:      c.Highlight.ElevatedZ,
	}
}

// OverlayDir returns the directory scanned for overlay diagram files.
func (c *Config) OverlayDir() string {
	if c.Diagram.OverlayDir != "" {
		return c.Diagram.OverlayDir
	}
	return filepath.Join(ConfigDir(), "diagrams")
}

// ConfigDir returns the archmap config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "archmap")
}

// Path returns the global config file path.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the global config file and then any project file found from
// the working directory upwards. Missing files leave defaults in place.
func Load() *Config {
	cfg := Default()

	if data, err := os.ReadFile(Path()); err == nil {
		_ = toml.Unmarshal(data, cfg)
	}

	if project := findProjectConfig(); project != "" {
		if data, err := os.ReadFile(project); err == nil {
			_ = toml.Unmarshal(data, cfg)
		}
	}
	return cfg
}

// findProjectConfig walks up from the working directory looking for ProjectFile.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, ProjectFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Save writes the config to disk.
func Save(cfg *Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// EnsureExists creates the config file with defaults if it doesn't exist.
func EnsureExists() error {
	if _, err := os.Stat(Path()); err == nil {
		return nil // already exists
	}
	return Save(Default())
}
