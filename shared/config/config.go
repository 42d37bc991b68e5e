package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public Public
}

type Public struct {
	Api Api `yaml:"api"`
	Web Web `yaml:"web"`
	Log Log `yaml:"log"`
}

// Api configures the backend JSON API binary.
type Api struct {
	Port          int    `yaml:"port"`
	DbPath        string `yaml:"db_path"` // sqlite file, created on first startup
	AllowedOrigin string `yaml:"allowed_origin"`
}

// Web configures the frontend binary.
type Web struct {
	Port       int    `yaml:"port"`
	ApiBaseURL string `yaml:"api_base_url"`
}

type Log struct {
	Level string `yaml:"level"` // debug, info, warn, error
	JSON  bool   `yaml:"json"`
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err = yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	return &Config{public}
}
