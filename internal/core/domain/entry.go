package domain

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// CacheEntry is a single recorded fact: a reader and field were cached with a value.
type CacheEntry struct {
	ReaderKey ReaderKey
	FieldName InternedString
	// CacheType names the kind of cached structure, e.g. "float64s" or "docsWithField".
	CacheType string
	Value     any

	size string
}

// NewCacheEntry creates a CacheEntry for the given reader, field and value.
func NewCacheEntry(reader ReaderKey, field, cacheType string, value any) *CacheEntry {
	return &CacheEntry{
		ReaderKey: reader,
		FieldName: NewInternedString(field),
		CacheType: cacheType,
		Value:     value,
	}
}

// ValueID returns the identity token of the cached value.
func (e *CacheEntry) ValueID() ValueID {
	return valueID(e.Value, e)
}

// ReaderField returns the composite key the entry is cached under.
func (e *CacheEntry) ReaderField() ReaderField {
	return ReaderField{ReaderKey: e.ReaderKey, FieldName: e.FieldName}
}

// SetEstimatedSize records the estimated RAM usage of the cached value.
func (e *CacheEntry) SetEstimatedSize(bytes uint64) {
	e.size = humanize.Bytes(bytes)
}

// EstimatedSize returns the human readable size estimate, or "" if none was recorded.
func (e *CacheEntry) EstimatedSize() string {
	return e.size
}

// String renders the entry as '<reader>'=>'<field>',<cacheType>=><value identity>.
func (e *CacheEntry) String() string {
	var b strings.Builder
	b.WriteString("'")
	if e.ReaderKey != nil {
		b.WriteString(e.ReaderKey.String())
	}
	b.WriteString("'=>'")
	b.WriteString(e.FieldName.String())
	b.WriteString("',")
	b.WriteString(e.CacheType)
	b.WriteString("=>")
	b.WriteString(e.ValueID().String())
	if e.size != "" {
		b.WriteString(" (size =~ ")
		b.WriteString(e.size)
		b.WriteString(")")
	}
	return b.String()
}
