package contracts

// PluginInfo is one entry of a repository manifest. RepositoryID is
// stamped during manifest load and identifies the owning repository.
type PluginInfo struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Provider    string          `json:"provider"`
	ProjectURL  string          `json:"projectUrl"`
	Releases    []PluginRelease `json:"releases"`

	RepositoryID string `json:"-"`
}

// PluginRelease is one downloadable version of a plugin. URL starts
// out possibly relative in the manifest document and is rewritten to
// an absolute address during load.
type PluginRelease struct {
	Version   string      `json:"version"`
	Date      LenientTime `json:"date"`
	URL       string      `json:"url"`
	Requires  string      `json:"requires"`
	SHA512Sum string      `json:"sha512sum"`
}
