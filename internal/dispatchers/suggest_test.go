package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"watch", "watch", 0},
		{"wach", "watch", 1},
		{"WATCH", "watch", 0},
		{"evnets", "events", 2},
		{"kitten", "sitting", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			require.Equal(t, tt.want, levenshtein(tt.a, tt.b))
			require.Equal(t, tt.want, levenshtein(tt.b, tt.a))
		})
	}
}

func TestFindSimilarCommands(t *testing.T) {
	root := createTestTree()

	require.Equal(t, []string{"watch"}, FindSimilarCommands("wach", root, 3))
	require.Empty(t, FindSimilarCommands("zzzzzzzz", root, 3))
	require.Empty(t, FindSimilarCommands("watch", root, 3), "exact match is not a suggestion")
	require.Nil(t, FindSimilarCommands("x", nil, 3))

	config := root.Children["config"]
	require.Equal(t, []string{"get", "set"}, FindSimilarCommands("gt", config, 3))
	require.Len(t, FindSimilarCommands("gt", config, 1), 1)
}
