package snapshot

// File represents the structure of a field cache snapshot file.
type File struct {
	Version string      `yaml:"version"`
	Readers []ReaderDTO `yaml:"readers"`
	Entries []EntryDTO  `yaml:"entries"`
}

// ReaderDTO declares a reader and, for composite readers, its children in order.
type ReaderDTO struct {
	ID       string   `yaml:"id"`
	Children []string `yaml:"children"`
	Closed   bool     `yaml:"closed"`
}

// EntryDTO is a single cache entry.
// Entries sharing a Value handle share the same cached object.
type EntryDTO struct {
	Reader   string    `yaml:"reader"`
	Field    string    `yaml:"field"`
	Type     string    `yaml:"type"`
	Value    string    `yaml:"value"`
	Sentinel string    `yaml:"sentinel"`
	Data     []float64 `yaml:"data"`
}

const (
	sentinelBits        = "bits"
	sentinelPlaceholder = "placeholder"
)
