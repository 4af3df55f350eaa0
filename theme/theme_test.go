package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeavy(t *testing.T) {
	th := Heavy()

	assert.Equal(t, '┏', th.TopLeft)
	assert.Equal(t, '┳', th.TopCenter)
	assert.Equal(t, '┓', th.TopRight)
	assert.Equal(t, '┣', th.MiddleLeft)
	assert.Equal(t, '╋', th.MiddleCenter)
	assert.Equal(t, '┫', th.MiddleRight)
	assert.Equal(t, '┗', th.BottomLeft)
	assert.Equal(t, '┻', th.BottomCenter)
	assert.Equal(t, '┛', th.BottomRight)
	assert.Equal(t, '━', th.Horizontal)
	assert.Equal(t, '┃', th.Vertical)
	assert.Equal(t, '━', th.InnerHorizontal)
	assert.Equal(t, '┃', th.InnerVertical)
}

func TestPresetsAreValid(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			th, err := Lookup(name)
			require.NoError(t, err)
			assert.NoError(t, Validate(th))
		})
	}
}

func TestBorderless(t *testing.T) {
	th := Borderless(Heavy())

	frame := []rune{
		th.TopLeft, th.TopCenter, th.TopRight,
		th.MiddleLeft, th.MiddleCenter, th.MiddleRight,
		th.BottomLeft, th.BottomCenter, th.BottomRight,
		th.Horizontal, th.Vertical,
	}
	for _, r := range frame {
		assert.Equal(t, Absent, r)
	}
	assert.Equal(t, '━', th.InnerHorizontal)
	assert.Equal(t, '┃', th.InnerVertical)
}

func TestBorderless_Idempotent(t *testing.T) {
	for _, name := range Names() {
		th, err := Lookup(name)
		require.NoError(t, err)

		once := Borderless(th)
		assert.Equal(t, once, Borderless(once), name)
	}
}

func TestWithInner(t *testing.T) {
	th := Heavy().WithInner(Absent, '│')

	assert.Equal(t, Absent, th.InnerHorizontal)
	assert.Equal(t, '│', th.InnerVertical)
	assert.Equal(t, '┃', th.Vertical)
}

func TestFromBorder(t *testing.T) {
	th, err := FromBorder(lipgloss.Border{
		Top:         "=",
		Left:        "!",
		TopLeft:     "<",
		TopRight:    ">",
		MiddleLeft:  "[",
		MiddleRight: "]",
		Middle:      "x",
	})
	require.NoError(t, err)

	assert.Equal(t, '<', th.TopLeft)
	assert.Equal(t, '>', th.TopRight)
	assert.Equal(t, 'x', th.MiddleCenter)
	assert.Equal(t, '=', th.Horizontal)
	assert.Equal(t, '!', th.Vertical)
	assert.Equal(t, Absent, th.TopCenter)
	assert.Equal(t, Absent, th.BottomLeft)
}

func TestFromBorder_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		border lipgloss.Border
	}{
		{"multi rune", lipgloss.Border{Top: "=="}},
		{"wide rune", lipgloss.Border{TopLeft: "田"}},
		{"zero width", lipgloss.Border{Left: "\u0301"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromBorder(tt.border)
			assert.ErrorIs(t, err, ErrInvalidGlyph)
		})
	}
}

func TestLookup(t *testing.T) {
	th, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, Heavy(), th)

	th, err = Lookup("borderless")
	require.NoError(t, err)
	assert.Equal(t, Borderless(Heavy()), th)

	_, err = Lookup("fancy")
	assert.ErrorIs(t, err, ErrUnknownTheme)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"ascii", "borderless", "double", "heavy", "light", "rounded"}, Names())
}

func TestGlyphs(t *testing.T) {
	g := Borderless(ASCII()).Glyphs()

	assert.Len(t, g, 13)
	assert.Equal(t, "", g["top-left"])
	assert.Equal(t, "-", g["inner-horizontal"])
	assert.Equal(t, "|", g["inner-vertical"])
}
