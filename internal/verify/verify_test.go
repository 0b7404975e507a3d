package verify

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/permcube/internal/moves"
)

func TestRun_AllPass(t *testing.T) {
	rep, err := Run(context.Background(), moves.NewTable(), Config{Trials: 40, Seed: 1})
	require.NoError(t, err)
	require.Len(t, rep.Results, len(Checks()))
	assert.NotEqual(t, uuid.Nil, rep.RunID)
	for i, res := range rep.Results {
		assert.Equal(t, Checks()[i], res.Name)
		assert.True(t, res.Passed, "%s: %s", res.Name, res.Detail)
	}
	assert.True(t, rep.Passed())
	assert.Empty(t, rep.Failed())
}

func TestRun_Defaults(t *testing.T) {
	rep, err := Run(context.Background(), moves.NewTable(), Config{Trials: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, rep.Config.Trials)
	assert.Equal(t, DefaultConfig().MaxLength, rep.Config.MaxLength)
	assert.Equal(t, DefaultConfig().Epsilon, rep.Config.Epsilon)
}

func TestRun_DistinctRunIDs(t *testing.T) {
	tbl := moves.NewTable()
	a, err := Run(context.Background(), tbl, Config{Trials: 1})
	require.NoError(t, err)
	b, err := Run(context.Background(), tbl, Config{Trials: 1})
	require.NoError(t, err)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestRun_NilTable(t *testing.T) {
	_, err := Run(context.Background(), nil, DefaultConfig())
	assert.ErrorIs(t, err, ErrNilTable)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, moves.NewTable(), DefaultConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReport_Failed(t *testing.T) {
	rep := &Report{Results: []Result{
		{Name: "a", Passed: true},
		{Name: "b", Passed: false, Detail: "boom"},
	}}
	assert.False(t, rep.Passed())
	require.Len(t, rep.Failed(), 1)
	assert.Equal(t, "b", rep.Failed()[0].Name)
}

func TestDeriveSeed(t *testing.T) {
	assert.NotEqual(t, deriveSeed(7, "inverse-law"), deriveSeed(7, "bucket-sum"))
	assert.Equal(t, deriveSeed(7, "inverse-law"), deriveSeed(7, "inverse-law"))
}
