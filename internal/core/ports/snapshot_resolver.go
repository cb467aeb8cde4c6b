package ports

// SnapshotResolver expands command line arguments into snapshot files.
//
//go:generate go run go.uber.org/mock/mockgen -source=snapshot_resolver.go -destination=mocks/mock_snapshot_resolver.go -package=mocks
type SnapshotResolver interface {
	// Resolve expands files, globs and directories into snapshot paths.
	Resolve(patterns []string) ([]string, error)
}
