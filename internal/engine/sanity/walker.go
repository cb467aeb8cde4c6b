package sanity

import (
	"go.trai.ch/sanity/internal/core/domain"
	"go.trai.ch/sanity/internal/core/ports"
)

// Descendants returns the keys of every reader reachable from seed through
// the hierarchy, in breadth-first discovery order. The seed itself is not
// included. Each key is expanded at most once, so cyclic hierarchies terminate.
//
// A reader whose children cannot be resolved, typically because it has been
// closed, is treated as a leaf; onErr is told about it when non-nil.
func Descendants(
	hierarchy ports.ReaderHierarchy,
	seed domain.ReaderKey,
	onErr func(domain.ReaderKey, error),
) []domain.ReaderKey {
	seen := map[domain.ReaderKey]struct{}{seed: {}}
	queue := []domain.ReaderKey{seed}
	var result []domain.ReaderKey

	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]

		children, err := hierarchy.Children(key)
		if err != nil {
			if onErr != nil {
				onErr(key, err)
			}
			continue
		}

		for _, child := range children {
			if child == nil {
				continue
			}
			if _, ok := seen[child]; ok {
				continue
			}
			seen[child] = struct{}{}
			result = append(result, child)
			queue = append(queue, child)
		}
	}

	return result
}
