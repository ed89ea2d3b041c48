package constants

import "errors"

// Configuration errors.
var (
	ErrNoTokenConfigured   = errors.New("no access token configured, use 'wxc login' or set WXC_TOKEN")
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
	ErrEmptyToken          = errors.New("access token must not be empty")
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json or yaml")
)

// Argument errors.
var (
	ErrLocationRequired      = errors.New("--location flag is required")
	ErrInvalidKeyValue       = errors.New("invalid key=value argument")
	ErrUnknownEndpoint       = errors.New("unknown catalog endpoint")
	ErrInvalidBodyFile       = errors.New("body file must contain a JSON object or array")
	ErrDirectoryTraversal    = errors.New("path contains directory traversal sequences")
	ErrNotRegularFile        = errors.New("path is not a regular file")
	ErrConfirmationRequired  = errors.New("deletion requires --force")
	ErrUnsupportedShapeInCLI = errors.New("unsupported response shape")
)
