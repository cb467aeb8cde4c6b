package app_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sanity/internal/adapters/hierarchy"
	"go.trai.ch/sanity/internal/adapters/sizer"
	"go.trai.ch/sanity/internal/adapters/snapshot"
	"go.trai.ch/sanity/internal/app"
	"go.trai.ch/sanity/internal/core/domain"
	"go.trai.ch/sanity/internal/core/ports/mocks"
	"go.trai.ch/sanity/internal/engine/sanity"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const snapshotYAML = `version: "1"
readers:
  - id: top
    children: [seg0, seg1]
  - id: seg0
  - id: seg1
    closed: true
entries:
  - reader: top
    field: price
    type: float64s
    value: prices
  - reader: seg0
    field: price
    type: float64s
    value: prices
  - reader: seg0
    field: price
    type: float64s
`

const (
	mismatchMsg  = "Multiple distinct value objects for seg0+price"
	subreaderMsg = "Found caches for decendents of top+price"
)

type fixture struct {
	configLoader   *mocks.MockConfigLoader
	snapshotLoader *mocks.MockSnapshotLoader
	logger         *mocks.MockLogger
	checker        *sanity.Checker
	out            *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		configLoader:   mocks.NewMockConfigLoader(ctrl),
		snapshotLoader: mocks.NewMockSnapshotLoader(ctrl),
		logger:         mocks.NewMockLogger(ctrl),
		out:            &bytes.Buffer{},
	}
	f.checker = sanity.NewChecker(hierarchy.NewStructural(), sizer.NewEstimator(), f.logger)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return f
}

func (f *fixture) app() *app.App {
	return app.New(f.configLoader, nil, f.snapshotLoader, f.checker, nil, f.logger).WithOutput(f.out)
}

func loadSnapshot(string) ([]*domain.CacheEntry, error) {
	return snapshot.Parse([]byte(snapshotYAML))
}

func TestApp_Check_Findings(t *testing.T) {
	f := newFixture(t)
	f.configLoader.EXPECT().Load("").Return(&domain.Config{}, nil)
	f.snapshotLoader.EXPECT().Load("a.yaml").DoAndReturn(loadSnapshot)

	reports, err := f.app().Check(context.Background(), []string{"a.yaml"}, app.CheckOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsanityFound))

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, 2, zErr.Metadata()["count"])

	require.Len(t, reports, 1)
	assert.Equal(t, "a.yaml", reports[0].Path)
	assert.Equal(t, 3, reports[0].Entries)
	require.Len(t, reports[0].Findings, 2)
	assert.Equal(t, domain.InsanityValueMismatch, reports[0].Findings[0].Type())
	assert.Equal(t, domain.InsanitySubreader, reports[0].Findings[1].Type())

	out := f.out.String()
	assert.Contains(t, out, "a.yaml VALUE_MISMATCH: "+mismatchMsg+"\n")
	assert.Contains(t, out, "a.yaml SUBREADER: "+subreaderMsg+"\n")
	assert.Less(t, strings.Index(out, "VALUE_MISMATCH"), strings.Index(out, "SUBREADER"))
}

func TestApp_Check_ExpectedFindings(t *testing.T) {
	f := newFixture(t)
	cfg := &domain.Config{Expected: []domain.ExpectedRule{
		{Type: domain.InsanityValueMismatch, Message: mismatchMsg, Reason: "known duplicate"},
		{Message: subreaderMsg, Reason: "top level sort"},
	}}
	f.configLoader.EXPECT().Load("sanity.yaml").Return(cfg, nil)
	f.snapshotLoader.EXPECT().Load("a.yaml").DoAndReturn(loadSnapshot)

	reports, err := f.app().Check(context.Background(), []string{"a.yaml"}, app.CheckOptions{ConfigPath: "sanity.yaml"})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Empty(t, reports[0].Findings)
	require.Len(t, reports[0].Expected, 2)
	assert.Equal(t, "known duplicate", reports[0].Expected[0].Reason)
	assert.Equal(t, domain.InsanityExpected, reports[0].Expected[1].Type())
	assert.Empty(t, f.out.String())
}

func TestApp_Check_MultipleSnapshots(t *testing.T) {
	f := newFixture(t)
	f.configLoader.EXPECT().Load("").Return(&domain.Config{}, nil)
	f.snapshotLoader.EXPECT().Load(gomock.Any()).DoAndReturn(loadSnapshot).Times(3)

	paths := []string{"a.yaml", "b.yaml", "c.yaml"}
	reports, err := f.app().Check(context.Background(), paths, app.CheckOptions{})
	require.ErrorIs(t, err, domain.ErrInsanityFound)

	require.Len(t, reports, len(paths))
	for i, report := range reports {
		assert.Equal(t, paths[i], report.Path)
		assert.Len(t, report.Findings, 2)
	}

	out := f.out.String()
	assert.Less(t, strings.Index(out, "a.yaml"), strings.Index(out, "b.yaml"))
	assert.Less(t, strings.Index(out, "b.yaml"), strings.Index(out, "c.yaml"))
}

func TestApp_Check_EstimateSize(t *testing.T) {
	tests := []struct {
		name     string
		config   bool
		flag     bool
		expected bool
	}{
		{name: "off", expected: false},
		{name: "config", config: true, expected: true},
		{name: "flag overrides config", flag: true, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.configLoader.EXPECT().Load("").Return(&domain.Config{EstimateSize: tt.config}, nil)
			f.snapshotLoader.EXPECT().Load("a.yaml").DoAndReturn(loadSnapshot)

			reports, err := f.app().Check(context.Background(), []string{"a.yaml"}, app.CheckOptions{EstimateSize: tt.flag})
			require.ErrorIs(t, err, domain.ErrInsanityFound)
			assert.Equal(t, tt.expected, f.checker.EstimateSize())

			entry := reports[0].Findings[0].Entries()[0]
			assert.Equal(t, tt.expected, entry.EstimatedSize() != "")
			assert.Equal(t, tt.expected, strings.Contains(f.out.String(), "size =~"))
		})
	}
}

func TestApp_Check_NoSnapshots(t *testing.T) {
	f := newFixture(t)

	_, err := f.app().Check(context.Background(), nil, app.CheckOptions{})
	require.ErrorIs(t, err, domain.ErrNoSnapshotsSpecified)
}

func TestApp_Check_ConfigError(t *testing.T) {
	f := newFixture(t)
	loadErr := errors.New("bad config")
	f.configLoader.EXPECT().Load("").Return(nil, loadErr)

	_, err := f.app().Check(context.Background(), []string{"a.yaml"}, app.CheckOptions{})
	require.ErrorIs(t, err, loadErr)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Check_SnapshotError(t *testing.T) {
	f := newFixture(t)
	loadErr := errors.New("no such snapshot")
	f.configLoader.EXPECT().Load("").Return(&domain.Config{}, nil)
	f.snapshotLoader.EXPECT().Load("missing.yaml").Return(nil, loadErr)

	reports, err := f.app().Check(context.Background(), []string{"missing.yaml"}, app.CheckOptions{})
	require.ErrorIs(t, err, loadErr)
	assert.False(t, errors.Is(err, domain.ErrInsanityFound))
	assert.Nil(t, reports)
	assert.Contains(t, err.Error(), "failed to load snapshot")
}

func TestApp_Check_Telemetry(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)
	progress := &bytes.Buffer{}

	f.configLoader.EXPECT().Load("").Return(&domain.Config{}, nil)
	f.snapshotLoader.EXPECT().Load("a.yaml").DoAndReturn(loadSnapshot)

	tel.EXPECT().Record(gomock.Any(), "check a.yaml").Return(context.Background(), vertex)
	vertex.EXPECT().Stdout().Return(progress)
	vertex.EXPECT().Complete(nil)

	a := app.New(f.configLoader, nil, f.snapshotLoader, f.checker, tel, f.logger).WithOutput(f.out)
	_, err := a.Check(context.Background(), []string{"a.yaml"}, app.CheckOptions{})
	require.ErrorIs(t, err, domain.ErrInsanityFound)
	assert.Equal(t, "3 entries, 2 findings, 0 expected\n", progress.String())
}

func TestApp_Check_CanceledContext(t *testing.T) {
	f := newFixture(t)
	f.configLoader.EXPECT().Load("").Return(&domain.Config{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.app().Check(ctx, []string{"a.yaml"}, app.CheckOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestApp_Check_ResolvesSnapshots(t *testing.T) {
	f := newFixture(t)
	resolver := mocks.NewMockSnapshotResolver(gomock.NewController(t))

	resolver.EXPECT().Resolve([]string{"snaps"}).Return([]string{"snaps/a.yaml", "snaps/b.yaml"}, nil)
	f.configLoader.EXPECT().Load("").Return(&domain.Config{}, nil)
	f.snapshotLoader.EXPECT().Load("snaps/a.yaml").DoAndReturn(loadSnapshot)
	f.snapshotLoader.EXPECT().Load("snaps/b.yaml").DoAndReturn(loadSnapshot)

	a := app.New(f.configLoader, resolver, f.snapshotLoader, f.checker, nil, f.logger).WithOutput(f.out)
	reports, err := a.Check(context.Background(), []string{"snaps"}, app.CheckOptions{})
	require.ErrorIs(t, err, domain.ErrInsanityFound)
	require.Len(t, reports, 2)
	assert.Equal(t, "snaps/a.yaml", reports[0].Path)
	assert.Equal(t, "snaps/b.yaml", reports[1].Path)
}

func TestApp_Check_ResolveError(t *testing.T) {
	f := newFixture(t)
	resolver := mocks.NewMockSnapshotResolver(gomock.NewController(t))
	resolver.EXPECT().Resolve([]string{"missing"}).Return(nil, domain.ErrSnapshotNotFound)

	a := app.New(f.configLoader, resolver, f.snapshotLoader, f.checker, nil, f.logger).WithOutput(f.out)
	_, err := a.Check(context.Background(), []string{"missing"}, app.CheckOptions{})
	require.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	assert.Contains(t, err.Error(), "failed to resolve snapshots")
}
