package assets

import (
	_ "embed"
)

// DefaultSettings is the base every settings file is merged over.
//
//go:embed default-settings.yaml
var DefaultSettings []byte

//go:embed settings.schema.json
var SettingsSchema []byte
