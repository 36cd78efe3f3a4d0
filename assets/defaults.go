package assets

import (
	_ "embed"
)

// DefaultConfigYAML is the commented template written by `gemsearch config init`.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte
