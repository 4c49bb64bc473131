// Package config loads the generator configuration (spreadsheet coordinates,
// datapack layout, cache backend and per-column defaults) from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no --config flag is given.
const DefaultPath = "mobgen.yaml"

// Config is the full generator configuration.
type Config struct {
	SpreadsheetID string   `yaml:"spreadsheet_id"`
	Sheets        Sheets   `yaml:"sheets"`
	Datapack      Datapack `yaml:"datapack"`
	Cache         Cache    `yaml:"cache"`
	Defaults      Defaults `yaml:"defaults"`
}

// Sheets names the tabs of the spreadsheet by export gid.
type Sheets struct {
	Mobs  SheetRef `yaml:"mobs"`
	Items SheetRef `yaml:"items"`
}

// SheetRef identifies one tab. SkipRows drops leading header rows for
// position-indexed sheets (the item sheet carries two).
type SheetRef struct {
	GID      string `yaml:"gid"`
	SkipRows int    `yaml:"skip_rows"`
}

// Datapack describes where generated files land.
type Datapack struct {
	Dir string `yaml:"dir"`
}

// Cache selects the CSV cache backend. A Redis address switches the cache
// from local files to Redis; TTL applies to Redis entries only.
type Cache struct {
	Dir       string   `yaml:"dir"`
	RedisAddr string   `yaml:"redis_addr"`
	RedisDB   int      `yaml:"redis_db"`
	TTL       Duration `yaml:"ttl"`
}

// Duration decodes YAML strings like "5m" or "1h30m".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// Defaults are the per-column fallbacks applied to blank cells.
type Defaults struct {
	BaseEntity  string `yaml:"base_entity"`
	BaseItem    string `yaml:"base_item"`
	Area        string `yaml:"area"`
	Group       string `yaml:"group"`
	AI          string `yaml:"ai"`
	Level       string `yaml:"level"`
	MaxHP       string `yaml:"max_hp"`
	Attack      string `yaml:"attack"`
	Defense     string `yaml:"defense"`
	Speed       string `yaml:"speed"`
	Luck        string `yaml:"luck"`
	MoveSpeed   string `yaml:"move_speed"`
	FollowRange string `yaml:"follow_range"`
	Knockback   string `yaml:"knockback_resistance"`
	BaseAttack  string `yaml:"base_attack"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Sheets: Sheets{
			Mobs:  SheetRef{GID: "0"},
			Items: SheetRef{GID: "1812502896", SkipRows: 2},
		},
		Datapack: Datapack{Dir: "datapack"},
		Cache:    Cache{Dir: ".mobgen/cache"},
		Defaults: Defaults{
			BaseEntity:  "zombie",
			BaseItem:    "minecraft:stone",
			Area:        "global",
			Group:       "ground",
			AI:          "blow",
			Level:       "1",
			MaxHP:       "20",
			Attack:      "5",
			Defense:     "0",
			Speed:       "5",
			Luck:        "0",
			MoveSpeed:   "0.23",
			FollowRange: "35",
			Knockback:   "0",
			BaseAttack:  "3",
		},
	}
}

// Load reads path and merges it over Default. A missing file at the default
// path is not an error; a missing explicit path is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
