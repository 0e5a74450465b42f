package types

// ResourceConfig locates the read-only scripture resources.
type ResourceConfig struct {
	// DataDir is the root that contains Bible/<lang>/<VERSION>/by_chapter/.
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// NotesConfig locates the directory where backing notes are created.
type NotesConfig struct {
	// NotesDir is the directory that receives one note per citation title.
	NotesDir string `json:"notes_dir" yaml:"notes_dir"`
}

// CitationConfig holds settings for resolving and rewriting citations.
type CitationConfig struct {
	ResourceConfig `yaml:",inline"`
	NotesConfig    `yaml:",inline"`

	// DefaultVersion is used when a command is given no --version (e.g. "ESV").
	DefaultVersion string `json:"default_version" yaml:"default_version"`

	// FuzzyMaxDistance caps the edit distance accepted for misspelled book
	// names. Zero uses the resolver default.
	FuzzyMaxDistance int `json:"fuzzy_max_distance" yaml:"fuzzy_max_distance"`
}

// IndexConfig holds settings for the citation index.
type IndexConfig struct {
	// IndexDir contains citations.db and the export files.
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// LogLevel selects diagnostic verbosity.
type LogLevel string

const (
	LogNone   LogLevel = "none"
	LogNormal LogLevel = "normal"
	LogDebug  LogLevel = "debug"
)

// LoggingConfig holds diagnostic logging settings.
type LoggingConfig struct {
	Level LogLevel `json:"level" yaml:"level"`
}

// WatchConfig holds settings for watch mode.
type WatchConfig struct {
	// Dir is the notes directory to watch for edited documents.
	Dir string `json:"dir" yaml:"dir"`

	// Version is the translation used when converting plain references.
	Version string `json:"version" yaml:"version"`
}

// Config groups every section of bible-citations.yaml.
type Config struct {
	Citation CitationConfig `json:"citation" yaml:"citation"`
	Index    IndexConfig    `json:"index" yaml:"index"`
	Logging  LoggingConfig  `json:"logging" yaml:"logging"`
	Watch    WatchConfig    `json:"watch" yaml:"watch"`
}
