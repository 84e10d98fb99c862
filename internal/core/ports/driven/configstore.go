package driven

// ConfigStore gives access to fixtodict.toml settings. Keys are
// dot-separated paths into nested tables, such as "output.indent" or
// "docs.typos". Typed getters return the zero value for missing keys and
// for values of another type.
type ConfigStore interface {
	Get(key string) (any, bool)
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetStringSlice(key string) []string

	// GetStringMap returns the string members of the table at key.
	GetStringMap(key string) map[string]string

	Set(key string, value any) error

	// Save persists values written with Set.
	Save() error

	// Load rereads the backing file, discarding unsaved values.
	Load() error

	// Path is the backing file, or a marker for non-file stores.
	Path() string
}
