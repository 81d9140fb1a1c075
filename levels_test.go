package citegraph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGraphLevels(t *testing.T) {
	cases := []struct {
		Name   string
		Nodes  int
		Edges  [][2]int
		Levels []int
	}{
		{
			"no edges",
			3,
			nil,
			[]int{0, 0, 0},
		},

		{
			"chain",
			3,
			[][2]int{{0, 1}, {1, 2}},
			[]int{0, 1, 2},
		},

		{
			"level is deepest predecessor plus one",
			4,
			[][2]int{{0, 1}, {1, 2}, {0, 3}, {2, 3}},
			[]int{0, 1, 2, 3},
		},

		{
			"citation graph",
			10,
			citationEdges,
			[]int{6, 5, 4, 3, 3, 2, 2, 1, 1, 0},
		},
	}

	for _, tt := range cases {
		t.Run(tt.Name, func(t *testing.T) {
			require := require.New(t)

			g := buildGraph(t, tt.Nodes, tt.Edges)
			levels, err := g.Levels()
			require.NoError(err)
			require.Equal(tt.Levels, levels)
		})
	}
}

func TestGraphLevels_cycle(t *testing.T) {
	require := require.New(t)

	g := buildGraph(t, 2, [][2]int{{0, 1}, {1, 0}})

	levels, err := g.Levels()
	require.Nil(levels)

	var cerr *ErrCycle
	require.True(errors.As(err, &cerr))
}

func TestLevelGroups(t *testing.T) {
	require := require.New(t)

	groups := LevelGroups([]int{6, 5, 4, 3, 3, 2, 2, 1, 1, 0})
	require.Len(groups, 7)
	require.Equal([]int{9}, groups[0])
	require.Equal([]int{7, 8}, groups[1])
	require.Equal([]int{5, 6}, groups[2])
	require.Equal([]int{3, 4}, groups[3])
	require.Equal([]int{0}, groups[6])
}
