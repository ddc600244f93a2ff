package draw

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   color.RGBA
		want uint8
	}{
		{"black", color.RGBA{0, 0, 0, 255}, 16},
		{"white", color.RGBA{255, 255, 255, 255}, 231},
		{"red", color.RGBA{255, 0, 0, 255}, 196},
		{"mid gray", color.RGBA{128, 128, 128, 255}, 244},
		{"limegreen", color.RGBA{50, 205, 50, 255}, 77},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromRGBA(tt.in)
			require.NotEqual(t, Transparent, got)
			assert.Equal(t, tt.want, got.Index())
		})
	}
	assert.Equal(t, Transparent, FromRGBA(color.RGBA{255, 0, 0, 0}))
}

func TestRenderHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)
	red, blue := ANSI256(196), ANSI256(21)

	c.SetFloat(0, 0, red)
	c.SetFloat(0, 1, blue)
	c.SetFloat(1, 1, red)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	assert.Contains(t, out, "\033[1;1H")
	assert.Contains(t, out, "\033[0;38;5;196;48;5;21m▀")
	assert.Contains(t, out, "\033[0;38;5;196m▄")
	assert.True(t, strings.HasSuffix(out, ColorReset))
}

func TestRenderOnlyChangedCells(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	green := ANSI256(46)

	var buf bytes.Buffer
	c.Render(&buf)
	require.NotEmpty(t, buf.String(), "first frame paints everything")

	buf.Reset()
	c.Render(&buf)
	assert.Empty(t, buf.String())

	c.SetFloat(2, 2, green)
	buf.Reset()
	c.Render(&buf)
	assert.Contains(t, buf.String(), "\033[2;3H")
	assert.Equal(t, 1, strings.Count(buf.String(), "H"), "one cell, one cursor move")

	c.Clear()
	buf.Reset()
	c.Render(&buf)
	assert.Contains(t, buf.String(), " ", "cleared cells are blanked")
}

func TestMarkTextDirtyRepaints(t *testing.T) {
	c := NewScaledCanvas(10, 3, 10, 6)
	var buf bytes.Buffer
	c.Render(&buf)

	c.MarkTextDirty(3, 2, 4)
	buf.Reset()
	c.Render(&buf)
	out := buf.String()
	assert.Contains(t, out, "\033[2;3H")
	assert.Equal(t, 4, strings.Count(out, " "))

	c.MarkTextDirty(0, 99, 4) // off canvas
	buf.Reset()
	c.Render(&buf)
	assert.Empty(t, buf.String())
}

func TestForceRedraw(t *testing.T) {
	c := NewScaledCanvas(3, 2, 3, 4)
	var buf bytes.Buffer
	c.Render(&buf)

	c.ForceRedraw()
	buf.Reset()
	c.Render(&buf)
	assert.Equal(t, 6, strings.Count(buf.String(), " "))
}

func TestOffsetAppliedToCursor(t *testing.T) {
	c := NewScaledCanvas(2, 2, 2, 4)
	c.SetOffset(5, 3)
	var buf bytes.Buffer
	c.Render(&buf)
	assert.True(t, strings.HasPrefix(buf.String(), "\033[4;6H"))

	c.SetFloat(1, 2, ANSI256(9))
	buf.Reset()
	c.Render(&buf)
	assert.True(t, strings.HasPrefix(buf.String(), "\033[5;7H"))
}

func TestDrawCircleScales(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	fill, stroke := ANSI256(1), ANSI256(2)

	c.DrawCircle(Point{10, 10}, 5, fill, stroke)

	assert.Equal(t, fill, c.pixel(10, 10))
	assert.Equal(t, Transparent, c.pixel(0, 0))
	assert.Equal(t, stroke, c.pixel(14, 10), "rim")
	assert.Equal(t, Transparent, c.pixel(16, 10))
}

func TestDrawTinyCircleSetsOnePixel(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	c.DrawCircle(Point{55, 55}, 2, ANSI256(3), Transparent)
	assert.Equal(t, ANSI256(3), c.pixel(5, 5))
}

func TestDrawPolygonFill(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	square := []Point{{2, 2}, {8, 2}, {8, 8}, {2, 8}}
	c.DrawPolygon(square, ANSI256(4), Transparent)

	assert.Equal(t, ANSI256(4), c.pixel(5, 5))
	assert.Equal(t, Transparent, c.pixel(0, 0))
	assert.Equal(t, Transparent, c.pixel(9, 9))
}

func TestLogicalToTerminal(t *testing.T) {
	c := NewScaledCanvas(128, 36, 1280, 720)
	col, row := c.LogicalToTerminal(640, 360)
	assert.Equal(t, 65, col)
	assert.Equal(t, 19, row)
}

func TestChunkWriterFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 2, 1)
	cw.WriteAt(1, 1, "hi")
	cw.WriteString(strings.Repeat("x", 3000))
	require.NoError(t, cw.Flush())

	assert.True(t, strings.HasPrefix(out.String(), "\033[2;3Hhi"))
	assert.Len(t, out.String(), len("\033[2;3Hhi")+3000)

	out.Reset()
	require.NoError(t, cw.Flush())
	assert.Empty(t, out.String(), "flush empties the buffer")
}
