package sanity

import "go.trai.ch/sanity/internal/core/domain"

// index holds the lookups shared by the detectors of a single check.
type index struct {
	// valIDToItems groups entries by the identity of their cached value.
	valIDToItems *domain.MapOfSets[domain.ValueID, *domain.CacheEntry]
	// readerFieldToValIDs maps each reader and field to the value identities cached for it.
	readerFieldToValIDs *domain.MapOfSets[domain.ReaderField, domain.ValueID]
	// mismatchKeys are the reader fields with more than one value identity, in discovery order.
	mismatchKeys []domain.ReaderField
}

func buildIndex(entries []*domain.CacheEntry) *index {
	idx := &index{
		valIDToItems:        domain.NewMapOfSets[domain.ValueID, *domain.CacheEntry](),
		readerFieldToValIDs: domain.NewMapOfSets[domain.ReaderField, domain.ValueID](),
	}
	ambiguous := make(map[domain.ReaderField]struct{})

	for _, entry := range entries {
		if domain.IsIgnoredValue(entry.Value) {
			continue
		}

		valID := entry.ValueID()
		rf := entry.ReaderField()

		idx.valIDToItems.Put(valID, entry)
		if idx.readerFieldToValIDs.Put(rf, valID) > 1 {
			if _, ok := ambiguous[rf]; !ok {
				ambiguous[rf] = struct{}{}
				idx.mismatchKeys = append(idx.mismatchKeys, rf)
			}
		}
	}

	return idx
}

// entriesFor appends every entry cached under any value identity of rf.
func (idx *index) entriesFor(dst []*domain.CacheEntry, rf domain.ReaderField) []*domain.CacheEntry {
	for valID := range idx.readerFieldToValIDs.Get(rf) {
		for entry := range idx.valIDToItems.Get(valID) {
			dst = append(dst, entry)
		}
	}
	return dst
}
