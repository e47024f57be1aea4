package config

import (
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/voxelsplace/redlevel/logging"
	"github.com/voxelsplace/redlevel/workspace"
)

// Config is the tool configuration read from a TOML file.
type Config struct {
	LevelDir    string         `toml:"level_dir"`
	BackupDir   string         `toml:"backup_dir"`
	Layout      string         `toml:"layout"`
	MaxFileSize int64          `toml:"max_file_size"`
	Compression string         `toml:"compression"`
	Log         logging.Config `toml:"log"`
}

func Default() Config {
	return Config{
		LevelDir:    "levels",
		BackupDir:   "levels/backup",
		Layout:      "layout.toml",
		Compression: "zstd",
		Log:         logging.DefaultConfig(),
	}
}

// Load reads path over the defaults. Keys absent from the file keep their
// default value; an empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config parse failed (%s)", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, errors.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if meta.IsDefined("level_dir") {
		cfg.LevelDir = strings.TrimSpace(raw.LevelDir)
	}
	if meta.IsDefined("backup_dir") {
		cfg.BackupDir = strings.TrimSpace(raw.BackupDir)
	}
	if meta.IsDefined("layout") {
		cfg.Layout = strings.TrimSpace(raw.Layout)
	}
	if meta.IsDefined("max_file_size") {
		cfg.MaxFileSize = raw.MaxFileSize
	}
	if meta.IsDefined("compression") {
		cfg.Compression = strings.TrimSpace(raw.Compression)
	}
	if meta.IsDefined("log", "level") {
		cfg.Log.Level = raw.Log.Level
	}
	if meta.IsDefined("log", "file") {
		cfg.Log.File = raw.Log.File
	}
	if meta.IsDefined("log", "no_color") {
		cfg.Log.NoColor = raw.Log.NoColor
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.LevelDir == "" {
		return errors.New("level_dir is required")
	}
	if c.BackupDir == "" {
		return errors.New("backup_dir is required")
	}
	if c.MaxFileSize < 0 {
		return errors.Errorf("max_file_size must not be negative (got %d)", c.MaxFileSize)
	}
	if _, err := workspace.ParseCompression(c.Compression); err != nil {
		return err
	}
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return errors.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
