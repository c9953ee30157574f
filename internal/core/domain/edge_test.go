package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.ncore.dev/ncore/internal/core/domain"
)

func TestEdge_EvaluateCommand_ExpandsInAndOut(t *testing.T) {
	s := domain.NewState()
	rule, err := s.AddRule("cc", "cc -c @in -o $out")
	require.NoError(t, err)

	edge := s.AddEdge(rule)
	require.NoError(t, s.AddInOut(edge, domain.In, "a.c"))
	require.NoError(t, s.AddInOut(edge, domain.In, "b.c"))
	require.NoError(t, s.AddInOut(edge, domain.Out, "out.o"))

	assert.Equal(t, "cc -c a.c b.c -o out.o", edge.EvaluateCommand())
}

func TestEdgeEnv_UnknownVariables_RecordedOnce(t *testing.T) {
	s := domain.NewState()
	rule, err := s.AddRule("cc", "$flags -c @in -o $out $flags")
	require.NoError(t, err)

	edge := s.AddEdge(rule)
	require.NoError(t, s.AddInOut(edge, domain.In, "a.c"))
	require.NoError(t, s.AddInOut(edge, domain.Out, "out.o"))

	env := domain.NewEdgeEnv(edge)
	edge.Rule.Command.Evaluate(env)

	assert.Equal(t, []string{"$flags"}, env.UnknownVariables())
}

func TestEdge_EvaluateCommand_NoOutputsYieldsEmptyOut(t *testing.T) {
	s := domain.NewState()
	rule, err := s.AddRule("echo", "echo $out")
	require.NoError(t, err)

	edge := s.AddEdge(rule)
	assert.Equal(t, "echo ", edge.EvaluateCommand())
}
