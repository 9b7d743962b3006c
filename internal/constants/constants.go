package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Pagination defaults.
const (
	// DefaultStartingPage is the first rowset page.
	DefaultStartingPage = 1
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750
)
