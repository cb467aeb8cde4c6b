package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sanity/cmd/sanity/commands"
	"go.trai.ch/sanity/internal/app"
	"go.trai.ch/sanity/internal/core/domain"
	"go.trai.ch/sanity/internal/core/ports/mocks"
	"go.trai.ch/sanity/internal/engine/sanity"
	"go.uber.org/mock/gomock"
)

type reader string

func (r *reader) String() string { return string(*r) }

func setup(t *testing.T) (*mocks.MockConfigLoader, *mocks.MockSnapshotLoader, *sanity.Checker, *app.App) {
	t.Helper()
	ctrl := gomock.NewController(t)

	configLoader := mocks.NewMockConfigLoader(ctrl)
	snapshotLoader := mocks.NewMockSnapshotLoader(ctrl)
	hierarchy := mocks.NewMockReaderHierarchy(ctrl)
	estimator := mocks.NewMockSizeEstimator(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	hierarchy.EXPECT().Children(gomock.Any()).Return(nil, nil).AnyTimes()
	estimator.EXPECT().EstimateSize(gomock.Any()).Return(uint64(1024), nil).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	checker := sanity.NewChecker(hierarchy, estimator, logger)
	a := app.New(configLoader, nil, snapshotLoader, checker, nil, logger).WithOutput(&bytes.Buffer{})
	return configLoader, snapshotLoader, checker, a
}

func TestCheck_Success(t *testing.T) {
	configLoader, snapshotLoader, _, a := setup(t)
	cli := commands.New(a)

	seg := reader("seg0")
	entries := []*domain.CacheEntry{domain.NewCacheEntry(&seg, "price", "float64s", []float64{1})}

	// 1. The configuration is loaded first
	configLoader.EXPECT().Load("").Return(&domain.Config{}, nil).Times(1)
	// 2. Then every snapshot
	snapshotLoader.EXPECT().Load("snap.yaml").Return(entries, nil).Times(1)

	cli.SetArgs([]string{"check", "snap.yaml"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestCheck_Flags(t *testing.T) {
	configLoader, snapshotLoader, checker, a := setup(t)
	cli := commands.New(a)

	configLoader.EXPECT().Load("ci/sanity.yaml").Return(&domain.Config{}, nil).Times(1)
	snapshotLoader.EXPECT().Load("snap.yaml").Return(nil, nil).Times(1)

	cli.SetArgs([]string{"check", "--estimate-size", "--config", "ci/sanity.yaml", "snap.yaml"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, checker.EstimateSize())
}

func TestCheck_InsanityFound(t *testing.T) {
	configLoader, snapshotLoader, _, a := setup(t)
	cli := commands.New(a)

	seg := reader("seg0")
	entries := []*domain.CacheEntry{
		domain.NewCacheEntry(&seg, "price", "float64s", []float64{1}),
		domain.NewCacheEntry(&seg, "price", "float64s", []float64{1}),
	}
	configLoader.EXPECT().Load("").Return(&domain.Config{}, nil)
	snapshotLoader.EXPECT().Load("snap.yaml").Return(entries, nil)

	cli.SetArgs([]string{"check", "snap.yaml"})
	err := cli.Execute(context.Background())
	assert.True(t, errors.Is(err, domain.ErrInsanityFound))
}

func TestCheck_NoSnapshots(t *testing.T) {
	_, _, _, a := setup(t)
	cli := commands.New(a)

	// No snapshots just displays help
	cli.SetArgs([]string{"check"})
	assert.NoError(t, cli.Execute(context.Background()))
}

func TestRoot_Help(t *testing.T) {
	_, _, _, a := setup(t)
	cli := commands.New(a)

	cli.SetArgs([]string{"--help"})
	assert.NoError(t, cli.Execute(context.Background()))
}

func TestVersion(t *testing.T) {
	_, _, _, a := setup(t)
	cli := commands.New(a)

	cli.SetArgs([]string{"version"})
	assert.NoError(t, cli.Execute(context.Background()))
}
