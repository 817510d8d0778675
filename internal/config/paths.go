package config

import (
	"os"
	"path/filepath"
)

// ConfigFileName is the optional config file looked up in the working directory
const ConfigFileName = "livraria.yaml"

// FindConfigPath returns the absolute path of ./livraria.yaml, or an empty
// string if there is none. No other location is searched.
func FindConfigPath() string {
	if !fileExists(ConfigFileName) {
		return ""
	}
	if abs, err := filepath.Abs(ConfigFileName); err == nil {
		return abs
	}
	return ConfigFileName
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
