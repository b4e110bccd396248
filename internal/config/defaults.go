package config

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     3000,
			SiteName: "Mintern",
			AllowAll: false,
		},
		API: APIConfig{
			BaseURL:        "http://localhost:8080",
			TimeoutSeconds: 10,
		},
		Forum: ForumConfig{
			PreviewLength: 80,
		},
		Export: ExportConfig{
			OutputDir: "archive",
		},
	}
}
