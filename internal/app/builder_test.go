package app_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sanity/internal/app"
	_ "go.trai.ch/sanity/internal/wiring"
)

func TestComponents_Graft(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)

	// Verify components are initialized
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
	require.NotNil(t, components.Telemetry)
}

func TestNewComponents(t *testing.T) {
	a := app.New(nil, nil, nil, nil, nil, nil)
	components := app.NewComponents(a, nil, nil)
	require.Same(t, a, components.App)
}
