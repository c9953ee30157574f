package fsoracle_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.ncore.dev/ncore/internal/adapters/fsoracle"
	"go.ncore.dev/ncore/internal/core/domain"
)

func TestStat_TouchesExistingLeafInputs(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "a.c")
	require.NoError(t, os.WriteFile(inPath, []byte("x"), 0o600))

	s := domain.NewState()
	rule, err := s.AddRule("cc", "cc @in")
	require.NoError(t, err)

	edge := s.AddEdge(rule)
	require.NoError(t, s.AddInOut(edge, domain.In, inPath))
	require.NoError(t, s.AddInOut(edge, domain.Out, filepath.Join(dir, "a.o")))

	require.NoError(t, fsoracle.Stat(s))

	assert.True(t, s.GetNode(inPath).Dirty())
	assert.True(t, s.GetNode(filepath.Join(dir, "a.o")).Dirty())
}

func TestStat_MissingInputIsSkippedNotError(t *testing.T) {
	dir := t.TempDir()

	s := domain.NewState()
	rule, err := s.AddRule("cc", "cc @in")
	require.NoError(t, err)

	edge := s.AddEdge(rule)
	require.NoError(t, s.AddInOut(edge, domain.In, filepath.Join(dir, "missing.c")))

	require.NoError(t, fsoracle.Stat(s))
	assert.False(t, s.GetNode(filepath.Join(dir, "missing.c")).Dirty())
}

func TestStat_LeavesProducedNodesAlone(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.o")
	require.NoError(t, os.WriteFile(outPath, []byte("stale"), 0o600))

	s := domain.NewState()
	rule, err := s.AddRule("cc", "cc @in")
	require.NoError(t, err)

	edge1 := s.AddEdge(rule)
	require.NoError(t, s.AddInOut(edge1, domain.Out, outPath))

	edge2 := s.AddEdge(rule)
	require.NoError(t, s.AddInOut(edge2, domain.In, outPath))

	require.NoError(t, fsoracle.Stat(s))
	assert.False(t, s.GetNode(outPath).Dirty())
}
