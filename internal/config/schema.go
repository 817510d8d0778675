package config

// Config is the root configuration structure
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig locates the SQLite store
type DatabaseConfig struct {
	Path string `yaml:"path"`
	Echo bool   `yaml:"echo"` // log every schema statement at debug level
}

// LogConfig controls the process logger
type LogConfig struct {
	Level  string `yaml:"level"`  // any logrus level name
	Format string `yaml:"format"` // text or json
}

// Log formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultDatabasePath is the store created in the working directory
const DefaultDatabasePath = "livraria.db"
