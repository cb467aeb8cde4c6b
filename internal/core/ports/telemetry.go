package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of units of work.
type Telemetry interface {
	// Record starts a new vertex with the given name.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording.
	Close() error
}

// Vertex is a single unit of work, such as the check of one snapshot.
type Vertex interface {
	// Stdout returns a writer for the vertex's output.
	Stdout() io.Writer
	// Complete marks the vertex as finished; err is nil on success.
	Complete(err error)
}
