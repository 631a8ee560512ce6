package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Configuration struct {
	ApiPort string `json:"api_port" yaml:"api_port" toml:"api_port"`
	LogPath string `json:"log_path" yaml:"log_path" toml:"log_path"`
	LogMode string `json:"log_mode" yaml:"log_mode" toml:"log_mode"` // "dev" or "prod"
	LogSQL  bool   `json:"log_sql" yaml:"log_sql" toml:"log_sql"`

	Database string `json:"database" yaml:"database" toml:"database"` // "sqlite3" or "postgres"
	DbPath   string `json:"db_path" yaml:"db_path" toml:"db_path"`
	DbHost   string `json:"db_host" yaml:"db_host" toml:"db_host"`
	DbPort   string `json:"db_port" yaml:"db_port" toml:"db_port"`
	DbUser   string `json:"db_user" yaml:"db_user" toml:"db_user"`
	DbName   string `json:"db_name" yaml:"db_name" toml:"db_name"`
	DbPass   string `json:"db_pass" yaml:"db_pass" toml:"db_pass"`

	AutoMigrate bool `json:"auto_migrate" yaml:"auto_migrate" toml:"auto_migrate"`
	Seed        bool `json:"seed" yaml:"seed" toml:"seed"`
}

// Get loads the configuration file and exits the process when it cannot.
func Get(path string) Configuration {
	c, err := Load(path)
	if err != nil {
		log.Fatal(err)
	}
	return c
}

// Load reads path as JSON, YAML or TOML depending on its extension, then
// applies environment overrides and defaults.
func Load(path string) (Configuration, error) {
	var c Configuration

	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &c)
	case ".toml":
		err = toml.Unmarshal(b, &c)
	default:
		err = json.Unmarshal(b, &c)
	}
	if err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}

	c.applyEnv()
	c.applyDefaults()
	return c, nil
}

func (c *Configuration) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		c.ApiPort = v
	}
	if v := strings.TrimSpace(os.Getenv("DATABASE")); v != "" {
		c.Database = v
	}
	if strings.TrimSpace(os.Getenv("AUTOMIGRATE")) == "1" {
		c.AutoMigrate = true
	}
}

func (c *Configuration) applyDefaults() {
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.LogMode == "" {
		c.LogMode = "dev"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.DbPath == "" {
		c.DbPath = "db/database.db"
	}
}
