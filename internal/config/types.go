package config

// Config is the top-level mintern configuration, corresponding to .mintern.yml.
type Config struct {
	Server ServerConfig `yaml:"server" koanf:"server"`
	API    APIConfig    `yaml:"api" koanf:"api"`
	Forum  ForumConfig  `yaml:"forum" koanf:"forum"`
	Export ExportConfig `yaml:"export" koanf:"export"`
}

// ServerConfig holds settings for the front-end HTTP server.
type ServerConfig struct {
	Port     int    `yaml:"port" koanf:"port"`
	SiteName string `yaml:"site_name" koanf:"site_name"`
	AllowAll bool   `yaml:"allow_all_cors" koanf:"allow_all_cors"`
}

// APIConfig points at the backend forum API that owns auth, persistence and email.
type APIConfig struct {
	BaseURL        string `yaml:"base_url" koanf:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}

// ForumConfig holds presentation settings for forum pages.
type ForumConfig struct {
	// PreviewLength is the maximum body length shown in listing context
	// before truncation with an ellipsis.
	PreviewLength int `yaml:"preview_length" koanf:"preview_length"`
}

// ExportConfig holds settings for the static archive exporter.
type ExportConfig struct {
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`
	// IntroFile is an optional markdown file rendered as the archive's
	// landing page intro.
	IntroFile string `yaml:"intro_file" koanf:"intro_file"`
}
