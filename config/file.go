package config

import (
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// File holds settings read from an optional TOML config file. Environment
// variables always take precedence over values found here.
type File struct {
	Listen    string `toml:"listen"`
	Port      int    `toml:"port"`
	DBFolder  string `toml:"db_folder"`
	LogFolder string `toml:"log_folder"`
	LogLevel  string `toml:"log_level"`
}

var (
	fileOnce sync.Once
	fileCfg  File
)

// GetFile parses the config file named by CAPI_CONFIG once. A missing or
// unreadable file yields the zero value, which leaves all defaults in place.
func GetFile() File {
	fileOnce.Do(func() {
		path := os.Getenv("CAPI_CONFIG")
		if path == "" {
			return
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return
		}
		_ = toml.Unmarshal(data, &fileCfg)
	})
	return fileCfg
}
