package sanity

import "go.trai.ch/sanity/internal/core/domain"

// checkValueMismatch reports every reader field that has more than one
// distinct cached value.
func checkValueMismatch(idx *index) ([]domain.Insanity, error) {
	insanity := make([]domain.Insanity, 0, len(idx.mismatchKeys))

	for _, rf := range idx.mismatchKeys {
		badEntries := idx.entriesFor(make([]*domain.CacheEntry, 0, idx.readerFieldToValIDs.Len(rf)), rf)

		ins, err := domain.NewInsanity(
			domain.InsanityValueMismatch,
			"Multiple distinct value objects for "+rf.String(),
			badEntries...,
		)
		if err != nil {
			return nil, err
		}
		insanity = append(insanity, ins)
	}

	return insanity, nil
}
