package domain

// Config mirrors ~/.gemsearch/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	Gemini              GeminiSettings  `yaml:"gemini"`
	Cache               CacheSettings   `yaml:"cache"`
	History             HistorySettings `yaml:"history"`
	Server              ServerSettings  `yaml:"server"`
}

// GeminiSettings controls how the Gemini CLI is located.
type GeminiSettings struct {
	Binary string `yaml:"binary"`
}

// CacheSettings configures the in-memory result cache.
type CacheSettings struct {
	TTL string `yaml:"ttl"`
}

// HistorySettings configures the history ledger.
type HistorySettings struct {
	MaxRecords int `yaml:"max_records"`
}

// ServerSettings configures the MCP server.
type ServerSettings struct {
	Name     string `yaml:"name"`
	HTTPAddr string `yaml:"http_addr"`
}
