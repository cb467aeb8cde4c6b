package sanity

import (
	"go.trai.ch/sanity/internal/core/domain"
)

// checkSubreaders reports fields cached both on a reader and on any of its
// descendants. Chains spanning several levels are reported once, rooted at
// the topmost cached ancestor found.
func (c *Checker) checkSubreaders(idx *index) ([]domain.Insanity, error) {
	badChildren := domain.NewMapOfSets[domain.ReaderField, domain.ReaderField]()
	seen := make(map[domain.ReaderField]struct{})
	descendants := make(map[domain.ReaderKey][]domain.ReaderKey)

	for rf := range idx.readerFieldToValIDs.Keys() {
		if _, ok := seen[rf]; ok {
			continue
		}

		kids, ok := descendants[rf.ReaderKey]
		if !ok {
			kids = Descendants(c.hierarchy, rf.ReaderKey, c.walkFailed)
			descendants[rf.ReaderKey] = kids
		}

		for _, kidKey := range kids {
			kid := domain.ReaderField{ReaderKey: kidKey, FieldName: rf.FieldName}

			switch {
			case badChildren.Contains(kid):
				// kid already owns a group: fold it into the current ancestor.
				badChildren.Put(rf, kid)
				badChildren.PutAll(rf, badChildren.Get(kid))
				badChildren.Remove(kid)
			case idx.readerFieldToValIDs.Contains(kid):
				badChildren.Put(rf, kid)
			}
			seen[kid] = struct{}{}
		}
		seen[rf] = struct{}{}
	}

	insanity := make([]domain.Insanity, 0, badChildren.Size())
	for parent := range badChildren.Keys() {
		badEntries := make([]*domain.CacheEntry, 0, 2*badChildren.Len(parent))
		badEntries = idx.entriesFor(badEntries, parent)
		for kid := range badChildren.Get(parent) {
			badEntries = idx.entriesFor(badEntries, kid)
		}

		ins, err := domain.NewInsanity(
			domain.InsanitySubreader,
			"Found caches for decendents of "+parent.String(),
			badEntries...,
		)
		if err != nil {
			return nil, err
		}
		insanity = append(insanity, ins)
	}

	return insanity, nil
}
