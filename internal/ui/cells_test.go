package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/gamecat/internal/schema"
)

func plainStyles() Styles {
	return NewStyles(builtinTheme("coffee"), true)
}

func TestClampLines(t *testing.T) {
	text := "one two three four five six seven eight nine ten eleven twelve"

	out := clampLines(text, 10, 2)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasSuffix(lines[1], "…"))
	for _, l := range lines {
		require.LessOrEqual(t, len([]rune(l)), 10)
	}

	require.Equal(t, "short", clampLines("  short  ", 10, 3))
	require.Greater(t, len(strings.Split(clampLines(text, 10, 0), "\n")), 2)
}

func TestCellLineExpandMarker(t *testing.T) {
	st := plainStyles()
	c := schema.Cell{Kind: schema.KindExpandable, Text: "Aster"}
	require.Equal(t, "▸ Aster", cellLine(c, st, false))
	require.Equal(t, "▾ Aster", cellLine(c, st, true))
}

func TestCellLineStrikeWithoutColor(t *testing.T) {
	st := plainStyles()
	c := schema.Cell{Kind: schema.KindLink, Text: "Bramble", Strike: true}
	require.Equal(t, "Bramble (unavailable)", cellLine(c, st, false))
}

func TestCellLineKinds(t *testing.T) {
	st := plainStyles()
	require.Equal(t, "Cozy · Farming", cellLine(schema.Cell{Kind: schema.KindBadges, Badges: []string{"Cozy", "Farming"}}, st, false))
	require.Equal(t, "first …", cellLine(schema.Cell{Kind: schema.KindClamped, Text: "first\nsecond"}, st, false))
	require.Equal(t, "2019", cellLine(schema.Cell{Kind: schema.KindText, Text: "2019"}, st, false))
}

func TestPlainCell(t *testing.T) {
	require.Equal(t, "A, B", plainCell(schema.Cell{Kind: schema.KindBadges, Badges: []string{"A", "B"}}))
	require.Equal(t, "X (unavailable)", plainCell(schema.Cell{Kind: schema.KindExpandable, Text: "X", Strike: true}))
	require.Equal(t, "X", plainCell(schema.Cell{Kind: schema.KindLink, Text: "X"}))
}

func TestRenderBadgesEmpty(t *testing.T) {
	require.Equal(t, "no tags", renderBadges(nil, plainStyles(), 40))
}
