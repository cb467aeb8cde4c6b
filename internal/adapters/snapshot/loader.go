// Package snapshot loads field cache dumps from YAML files.
package snapshot

import (
	"fmt"
	"os"

	"go.trai.ch/sanity/internal/core/domain"
	"go.trai.ch/sanity/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SnapshotLoader = (*Loader)(nil)

// Loader implements ports.SnapshotLoader for YAML snapshot files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the snapshot at path.
func (l *Loader) Load(path string) ([]*domain.CacheEntry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read snapshot"), "path", path)
	}

	entries, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.logger.Info(fmt.Sprintf("loaded %d cache entries from %s", len(entries), path))
	return entries, nil
}

// Parse decodes a snapshot document.
func Parse(data []byte) ([]*domain.CacheEntry, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse snapshot")
	}

	readers, err := buildReaders(file.Readers)
	if err != nil {
		return nil, err
	}

	values := make(map[string]*Value)
	entries := make([]*domain.CacheEntry, 0, len(file.Entries))
	for i, dto := range file.Entries {
		reader, ok := readers[dto.Reader]
		if !ok {
			err := zerr.With(zerr.Wrap(domain.ErrUnknownReader, "invalid entry"), "reader", dto.Reader)
			return nil, zerr.With(err, "entry", i)
		}

		value, err := entryValue(dto, values)
		if err != nil {
			return nil, zerr.With(err, "entry", i)
		}

		entries = append(entries, domain.NewCacheEntry(reader, dto.Field, dto.Type, value))
	}

	return entries, nil
}

func buildReaders(dtos []ReaderDTO) (map[string]*Reader, error) {
	readers := make(map[string]*Reader, len(dtos))
	for _, dto := range dtos {
		if _, exists := readers[dto.ID]; exists {
			return nil, zerr.With(zerr.Wrap(domain.ErrDuplicateReader, "invalid reader"), "reader", dto.ID)
		}
		readers[dto.ID] = &Reader{id: dto.ID, closed: dto.Closed}
	}

	// Second pass: children may be declared after their parent.
	for _, dto := range dtos {
		parent := readers[dto.ID]
		for _, childID := range dto.Children {
			child, ok := readers[childID]
			if !ok {
				err := zerr.With(zerr.Wrap(domain.ErrUnknownReader, "invalid reader child"), "reader", childID)
				return nil, zerr.With(err, "parent", dto.ID)
			}
			parent.children = append(parent.children, child)
		}
	}

	return readers, nil
}

func entryValue(dto EntryDTO, values map[string]*Value) (any, error) {
	if dto.Sentinel != "" {
		return sentinelValue(dto)
	}

	if dto.Value == "" {
		return &Value{Data: dto.Data}, nil
	}
	if v, ok := values[dto.Value]; ok {
		return v, nil
	}
	v := &Value{Handle: dto.Value, Data: dto.Data}
	values[dto.Value] = v
	return v, nil
}

func sentinelValue(dto EntryDTO) (any, error) {
	switch dto.Sentinel {
	case sentinelBits:
		set := make([]bool, len(dto.Data))
		for i, d := range dto.Data {
			set[i] = d != 0
		}
		return &Bits{set: set}, nil
	case sentinelPlaceholder:
		return &domain.CreationPlaceholder{}, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownSentinel, "invalid entry"), "sentinel", dto.Sentinel)
	}
}
