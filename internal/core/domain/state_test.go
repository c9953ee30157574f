package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.ncore.dev/ncore/internal/core/domain"
)

func TestState_AddRule_OverwritesExisting(t *testing.T) {
	s := domain.NewState()

	_, err := s.AddRule("cc", "$cc -c @in -o $out")
	require.NoError(t, err)

	rule, err := s.AddRule("cc", "$cc -O2 -c @in -o $out")
	require.NoError(t, err)

	assert.Same(t, rule, s.Rules["cc"])
	assert.Equal(t, "$cc -O2 -c @in -o $out", rule.Command.Unparsed())
}

func TestState_AddRule_BadCommandIsError(t *testing.T) {
	s := domain.NewState()
	_, err := s.AddRule("bad", "$")
	assert.Error(t, err)
}

func TestState_AddEdgeByRuleName_UnknownRuleIsError(t *testing.T) {
	s := domain.NewState()
	_, err := s.AddEdgeByRuleName("missing")
	assert.ErrorIs(t, err, domain.ErrUnknownRule)
}

func TestState_GetNode_InternsAcrossCalls(t *testing.T) {
	s := domain.NewState()
	n1 := s.GetNode("a.txt")
	n2 := s.GetNode("a.txt")
	assert.Same(t, n1, n2)
}

func TestState_AddInOut_WiresInputsAndOutputs(t *testing.T) {
	s := domain.NewState()
	rule, err := s.AddRule("cc", "$cc -c @in -o $out")
	require.NoError(t, err)

	edge := s.AddEdge(rule)
	require.NoError(t, s.AddInOut(edge, domain.In, "a.c"))
	require.NoError(t, s.AddInOut(edge, domain.Out, "a.o"))

	in := s.GetNode("a.c")
	out := s.GetNode("a.o")

	assert.Equal(t, []*domain.Node{in}, edge.Inputs)
	assert.Equal(t, []*domain.Node{out}, edge.Outputs)
	assert.Equal(t, []*domain.Edge{edge}, in.OutEdges)
	assert.Same(t, edge, out.InEdge)
}

func TestState_AddInOut_SecondProducerIsError(t *testing.T) {
	s := domain.NewState()
	rule, err := s.AddRule("cc", "$cc -c @in -o $out")
	require.NoError(t, err)

	edge1 := s.AddEdge(rule)
	require.NoError(t, s.AddInOut(edge1, domain.Out, "a.o"))

	edge2 := s.AddEdge(rule)
	err = s.AddInOut(edge2, domain.Out, "a.o")
	assert.ErrorIs(t, err, domain.ErrOutputAlreadyProduced)
}
