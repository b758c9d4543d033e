// SPDX-License-Identifier: MIT
// Package: hamilton/builder
//
// variants_platonic.go — canonical edge lists for the Platonic solids.
//
// Every list is sorted lexicographically by (U,V) with U < V and must not be
// mutated; PlatonicSolid copies it into a fresh matrix on every call.

package builder

import "strings"

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

var platonicNames = [...]string{"Tetrahedron", "Cube", "Octahedron", "Dodecahedron", "Icosahedron"}

// String implements fmt.Stringer.
func (p PlatonicName) String() string {
	if p < 0 || int(p) >= len(platonicNames) {
		return "Unknown"
	}

	return platonicNames[p]
}

// ParsePlatonicName maps a case-insensitive solid name to its PlatonicName.
func ParsePlatonicName(s string) (PlatonicName, bool) {
	for i, name := range platonicNames {
		if strings.EqualFold(name, s) {
			return PlatonicName(i), true
		}
	}

	return 0, false
}

// platonicVertexCounts maps each solid to its vertex count.
var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

// platonicEdgeSets maps each solid to its edge list.
var platonicEdgeSets = map[PlatonicName][][2]int{
	Tetrahedron: {{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},

	// Bottom face 0-1-2-3, top face 4-5-6-7, verticals i–i+4.
	Cube: {
		{0, 1}, {0, 3}, {0, 4}, {1, 2}, {1, 5}, {2, 3},
		{2, 6}, {3, 7}, {4, 5}, {4, 7}, {5, 6}, {6, 7},
	},

	// Poles 0 and 1, equator 2-4-3-5.
	Octahedron: {
		{0, 2}, {0, 3}, {0, 4}, {0, 5}, {1, 2}, {1, 3},
		{1, 4}, {1, 5}, {2, 4}, {2, 5}, {3, 4}, {3, 5},
	},

	// Top pentagon 0..4, bottom pentagon 5..9, middle 10-cycle 10..19.
	// Top i joins middle 10+2i, bottom 5+i joins middle 11+2i.
	// This is the graph of Hamilton's icosian game.
	Dodecahedron: {
		{0, 1}, {0, 4}, {0, 10}, {1, 2}, {1, 12}, {2, 3}, {2, 14}, {3, 4}, {3, 16}, {4, 18},
		{5, 6}, {5, 9}, {5, 11}, {6, 7}, {6, 13}, {7, 8}, {7, 15}, {8, 9}, {8, 17}, {9, 19},
		{10, 11}, {10, 19}, {11, 12}, {12, 13}, {13, 14}, {14, 15}, {15, 16}, {16, 17}, {17, 18}, {18, 19},
	},

	// Poles 0 and 11, top ring 1..5, bottom ring 6..10; top i joins bottom
	// i+5 and the next one around.
	Icosahedron: {
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 5}, {1, 6}, {1, 7}, {2, 3}, {2, 7}, {2, 8},
		{3, 4}, {3, 8}, {3, 9}, {4, 5}, {4, 9}, {4, 10}, {5, 6}, {5, 10},
		{6, 7}, {6, 10}, {6, 11}, {7, 8}, {7, 11}, {8, 9}, {8, 11},
		{9, 10}, {9, 11}, {10, 11},
	},
}
