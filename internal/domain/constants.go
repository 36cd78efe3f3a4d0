package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// FilePermissions is the permission for exported files (rw-r--r--)
	FilePermissions = 0o644
)

// Search constants
const (
	// MaxQueryLength is the maximum number of characters accepted in a query
	MaxQueryLength = 500
	// DefaultGeminiBinary is the executable invoked for searches
	DefaultGeminiBinary = "gemini"
	// SearchPromptPrefix is prepended to every query passed to the Gemini CLI
	SearchPromptPrefix = "WebSearch: "
)

// Cache constants
const (
	// DefaultCacheTTL is how long a cached result is served before it is considered stale
	DefaultCacheTTL = time.Hour
)

// History constants
const (
	// MaxHistory is the maximum number of records kept in the history ledger
	MaxHistory = 100
	// DefaultHistoryLimit is the default number of history records returned by tools
	DefaultHistoryLimit = 10
	// DefaultHistoryResourceLimit is the number of records exposed by the history resource
	DefaultHistoryResourceLimit = 20
)

// Server constants
const (
	// DefaultServerName is the MCP implementation name announced during the handshake
	DefaultServerName = "gemini-search"
	// DefaultHTTPAddr is the listen address used by the streamable HTTP transport
	DefaultHTTPAddr = ":8080"
)
