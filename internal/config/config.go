package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	appDirName            = "planner"
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "planner.db"
)

type Keymap struct {
	Quit    string `toml:"quit"`
	Add     string `toml:"add"`
	Edit    string `toml:"edit"`
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	Toggle  string `toml:"toggle"`
	Delete  string `toml:"delete"`
	Search  string `toml:"search"`
	View    string `toml:"view"`
	Range   string `toml:"range"`
	Labels  string `toml:"labels"`
	Confirm string `toml:"confirm"`
	Cancel  string `toml:"cancel"`
}

type Config struct {
	DBPath       string `toml:"db_path"`
	DefaultView  string `toml:"default_view"`
	DefaultRange string `toml:"default_range"`
	Keys         Keymap `toml:"keys"`
}

// ResolveConfigPath places the config under the user config dir,
// falling back to the working directory when that cannot be resolved.
func ResolveConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(base, appDirName, DefaultConfigFileName)
}

// LoadOrCreate reads the config at path, writing the defaults there
// first when no file exists yet. Missing fields keep their defaults.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig(filepath.Dir(path))
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(filepath.Dir(path), DefaultDBName)
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig(dir string) Config {
	return Config{
		DBPath:       filepath.Join(dir, DefaultDBName),
		DefaultView:  "list",
		DefaultRange: "all",
		Keys: Keymap{
			Quit:    "q",
			Add:     "a",
			Edit:    "e",
			Up:      "k",
			Down:    "j",
			Toggle:  " ",
			Delete:  "d",
			Search:  "/",
			View:    "tab",
			Range:   "f",
			Labels:  "L",
			Confirm: "enter",
			Cancel:  "esc",
		},
	}
}
