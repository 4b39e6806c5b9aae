package core

import (
	"encoding/json"
	"net/url"

	"github.com/smartystreets/logging"

	"github.com/smarty/pluginrepo/contracts"
)

// RepositoryClient is the default contracts.UpdateRepository. It
// fetches the plugin manifest lazily, keeps the parsed result, and
// re-fetches only after Refresh. Not safe for concurrent use;
// concurrent first loads merely duplicate an idempotent fetch.
type RepositoryClient struct {
	logger *logging.Logger

	id           string
	address      url.URL
	manifestName string
	downloader   contracts.Downloader
	plugins      map[string]contracts.PluginInfo
}

// NewRepositoryClient builds a client for the repository rooted at
// address. An empty manifestName selects plugins.json.
func NewRepositoryClient(id string, address url.URL, manifestName string, downloader contracts.Downloader) *RepositoryClient {
	if manifestName == "" {
		manifestName = contracts.DefaultManifestFilename
	}
	return &RepositoryClient{
		id:           id,
		address:      address,
		manifestName: manifestName,
		downloader:   downloader,
	}
}

// NewConfiguredRepositoryClient builds a client from a declarative
// repository entry, typically decoded from a JSON settings file.
func NewConfiguredRepositoryClient(config contracts.RepositoryConfig, downloader contracts.Downloader) *RepositoryClient {
	return NewRepositoryClient(config.ID, *config.Address.Value(), config.ManifestName, downloader)
}

func (this *RepositoryClient) ID() string {
	return this.id
}

func (this *RepositoryClient) Address() url.URL {
	return this.address
}

// Plugins returns the manifest contents keyed by plugin id, fetching
// them on first call. A failed load yields an empty map plus a logged
// error and stays cached until Refresh; a dead repository must not
// take down an aggregate view built over several repositories.
func (this *RepositoryClient) Plugins() map[string]contracts.PluginInfo {
	if this.plugins == nil {
		this.plugins = this.loadPlugins()
	}
	return this.plugins
}

func (this *RepositoryClient) Plugin(id string) (contracts.PluginInfo, bool) {
	plugin, found := this.Plugins()[id]
	return plugin, found
}

// Refresh discards the cached manifest so the next Plugins call
// fetches it again.
func (this *RepositoryClient) Refresh() {
	this.plugins = nil
}

func (this *RepositoryClient) loadPlugins() map[string]contracts.PluginInfo {
	plugins := make(map[string]contracts.PluginInfo)

	manifestAddress, err := this.address.Parse(this.manifestName)
	if err != nil {
		this.logger.Printf("[WARN] repository '%s' has no usable manifest address: %v", this.id, err)
		return plugins
	}
	body, err := this.downloader.Download(*manifestAddress)
	if err != nil {
		this.logger.Printf("[WARN] could not fetch manifest of repository '%s' from %s: %v", this.id, manifestAddress, err)
		return plugins
	}
	defer func() { _ = body.Close() }()

	var records []contracts.PluginInfo
	err = json.NewDecoder(body).Decode(&records)
	if err != nil {
		this.logger.Printf("[WARN] malformed manifest of repository '%s': %v", this.id, err)
		return plugins
	}

	for _, plugin := range records {
		plugin.Releases = this.resolveReleases(plugin)
		plugin.RepositoryID = this.id
		plugins[plugin.ID] = plugin
	}
	this.logger.Printf("found %d plugins in repository '%s'", len(plugins), this.id)
	return plugins
}

// resolveReleases rewrites each release URL to an absolute address. A
// release that cannot be resolved is dropped, not fatal; the rest of
// the manifest stays usable.
func (this *RepositoryClient) resolveReleases(plugin contracts.PluginInfo) (resolved []contracts.PluginRelease) {
	for _, release := range plugin.Releases {
		address, err := this.address.Parse(release.URL)
		if err != nil || !address.IsAbs() {
			this.logger.Printf("[WARN] skipping release %s of plugin %s: could not build absolute URL from %s and %s",
				release.Version, plugin.ID, this.address.String(), release.URL)
			continue
		}
		release.URL = address.String()
		if release.Date.IsEpoch() {
			this.logger.Printf("[WARN] illegal release date on %s@%s, defaulting to epoch", plugin.ID, release.Version)
		}
		resolved = append(resolved, release)
	}
	return resolved
}
