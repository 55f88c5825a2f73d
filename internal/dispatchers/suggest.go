package dispatchers

import (
	"sort"
	"strings"
)

// levenshtein returns the case-insensitive edit distance between a and b.
func levenshtein(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// FindSimilarCommands returns up to maxResults children of node whose
// name is within edit distance 3 of input, closest first.
func FindSimilarCommands(input string, node *DispatchNode, maxResults int) []string {
	if node == nil {
		return nil
	}

	const maxDistance = 3

	type candidate struct {
		name     string
		distance int
	}
	var candidates []candidate
	for name := range node.Children {
		if d := levenshtein(input, name); d > 0 && d <= maxDistance {
			candidates = append(candidates, candidate{name, d})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].name < candidates[j].name
	})

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.name
	}
	return names
}
