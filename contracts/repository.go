package contracts

import "net/url"

// DefaultManifestFilename is resolved against the repository base
// address when no other manifest name is configured.
const DefaultManifestFilename = "plugins.json"

type UpdateRepository interface {
	ID() string
	Address() url.URL
	Plugins() map[string]PluginInfo
	Plugin(id string) (PluginInfo, bool)
	Refresh()
}

// RepositoryConfig is the JSON shape callers use to declare the
// repositories they aggregate over.
type RepositoryConfig struct {
	ID           string `json:"id"`
	Address      URL    `json:"url"`
	ManifestName string `json:"plugins_json_file_name"`
}
