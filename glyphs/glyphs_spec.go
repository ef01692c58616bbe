// SPDX-License-Identifier: MIT
// Package: kanjirec/glyphs
//
// glyphs_spec.go - canonical stroke data for the built-in characters (data-only).
//
// Purpose:
//   - The single source of truth for the demo corpus: a few dozen common
//     characters drawn on a Grid×Grid canvas (y grows downwards), one
//     straight segment per stroke, strokes in standard writing order.
//   - Multi-part strokes (the top-right corner of 口, the hook of 子) are
//     reduced to their first and last point, exactly as the recogniser
//     sees them.
//
// Determinism:
//   - Entries are hand-ordered and stable; Runes() reports this order.
//   - Never reorder strokes of an existing entry; append new characters only.
//
// Notes:
//   - Several entries are near neighbours on purpose (大/犬/太, 牛/午,
//     干/千, 木/本/末) so rankings have something to separate.

package glyphs

// Grid is the side of the canvas the coordinates live on.
const Grid = 109

// seg is one stroke: startX, startY, endX, endY on the Grid canvas.
type seg [4]float64

// spec is one character and its strokes.
type spec struct {
	r       rune
	strokes []seg
}

// registry is the built-in corpus in declaration order.
var registry = []spec{
	{'一', []seg{{18, 55, 92, 55}}},
	{'二', []seg{{28, 35, 82, 35}, {14, 80, 96, 80}}},
	{'三', []seg{{24, 24, 86, 24}, {30, 54, 80, 54}, {14, 90, 96, 90}}},
	{'十', []seg{{14, 52, 96, 52}, {55, 12, 55, 100}}},
	{'人', []seg{{54, 14, 16, 96}, {52, 44, 96, 94}}},
	{'口', []seg{{22, 30, 22, 88}, {22, 30, 86, 88}, {24, 84, 86, 84}}},
	{'日', []seg{{26, 16, 26, 96}, {26, 16, 84, 94}, {28, 54, 82, 54}, {28, 92, 82, 92}}},
	{'目', []seg{{28, 12, 28, 98}, {28, 12, 82, 96}, {30, 40, 80, 40}, {30, 66, 80, 66}, {30, 94, 80, 94}}},
	{'木', []seg{{14, 40, 96, 40}, {55, 10, 55, 102}, {54, 40, 14, 86}, {56, 42, 96, 84}}},
	{'本', []seg{{14, 40, 96, 40}, {55, 10, 55, 102}, {54, 40, 14, 86}, {56, 42, 96, 84}, {36, 80, 74, 80}}},
	{'大', []seg{{14, 40, 96, 40}, {55, 12, 16, 96}, {54, 48, 96, 96}}},
	{'犬', []seg{{14, 40, 96, 40}, {55, 12, 16, 96}, {54, 48, 96, 96}, {76, 14, 86, 26}}},
	{'太', []seg{{14, 40, 96, 40}, {55, 12, 16, 96}, {54, 48, 96, 96}, {48, 74, 58, 86}}},
	{'天', []seg{{22, 24, 88, 24}, {14, 50, 96, 50}, {55, 24, 16, 98}, {56, 56, 96, 98}}},
	{'夫', []seg{{22, 36, 88, 36}, {14, 58, 96, 58}, {55, 12, 16, 98}, {56, 62, 96, 98}}},
	{'山', []seg{{55, 12, 55, 88}, {22, 36, 88, 88}, {88, 30, 88, 90}}},
	{'川', []seg{{30, 20, 18, 90}, {55, 26, 55, 82}, {84, 14, 86, 96}}},
	{'土', []seg{{26, 46, 84, 46}, {55, 16, 55, 90}, {12, 92, 98, 92}}},
	{'王', []seg{{20, 22, 88, 22}, {26, 54, 82, 54}, {55, 22, 55, 90}, {12, 92, 98, 92}}},
	{'田', []seg{{22, 20, 22, 94}, {22, 20, 86, 92}, {55, 22, 55, 90}, {24, 56, 84, 56}, {24, 90, 84, 90}}},
	{'中', []seg{{24, 34, 24, 76}, {24, 34, 86, 74}, {26, 72, 84, 72}, {55, 10, 55, 104}}},
	{'上', []seg{{52, 12, 52, 92}, {54, 50, 88, 50}, {12, 92, 98, 92}}},
	{'下', []seg{{12, 20, 98, 20}, {52, 20, 52, 102}, {56, 46, 82, 64}}},
	{'工', []seg{{22, 24, 88, 24}, {55, 24, 55, 86}, {12, 88, 98, 88}}},
	{'小', []seg{{55, 10, 54, 98}, {30, 40, 14, 78}, {76, 36, 96, 74}}},
	{'子', []seg{{26, 18, 56, 42}, {56, 42, 50, 100}, {12, 58, 98, 58}}},
	{'女', []seg{{46, 12, 72, 90}, {70, 30, 20, 96}, {12, 56, 98, 56}}},
	{'力', []seg{{18, 40, 72, 96}, {54, 12, 18, 96}}},
	{'万', []seg{{12, 22, 98, 22}, {46, 22, 18, 96}, {46, 50, 78, 96}}},
	{'文', []seg{{52, 10, 56, 26}, {14, 36, 96, 36}, {72, 40, 18, 98}, {34, 46, 96, 96}}},
	{'末', []seg{{14, 30, 96, 30}, {24, 54, 86, 54}, {55, 10, 55, 102}, {54, 54, 16, 92}, {56, 56, 96, 90}}},
	{'止', []seg{{55, 18, 55, 90}, {56, 50, 86, 50}, {26, 40, 26, 90}, {12, 92, 98, 92}}},
	{'牛', []seg{{40, 12, 22, 48}, {30, 34, 84, 34}, {14, 62, 96, 62}, {55, 12, 55, 102}}},
	{'午', []seg{{40, 12, 22, 48}, {30, 34, 84, 34}, {14, 62, 96, 62}, {55, 34, 55, 102}}},
	{'干', []seg{{22, 24, 88, 24}, {14, 56, 96, 56}, {55, 24, 55, 102}}},
	{'千', []seg{{76, 12, 30, 28}, {14, 56, 96, 56}, {55, 28, 55, 102}}},
}
