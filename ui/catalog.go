package ui

import (
	"fmt"
	"strings"
)

// CatalogRenderer renders the theme catalog shown by `gridline themes`
type CatalogRenderer struct {
	palette Palette
}

// NewCatalogRenderer creates a catalog renderer
func NewCatalogRenderer() *CatalogRenderer {
	return &CatalogRenderer{palette: DefaultPalette()}
}

// RenderTitle renders the catalog heading
func (r *CatalogRenderer) RenderTitle() string {
	return NewHeader("Available Themes").WithMargin().Render()
}

// RenderEntry renders one theme name with a row of its glyphs
func (r *CatalogRenderer) RenderEntry(name, glyphs string) string {
	return Bold.Foreground(r.palette.Data).Render(name) + " " + Muted.Render(glyphs)
}

// RenderEntries renders theme entries as a bulleted list
func (r *CatalogRenderer) RenderEntries(entries []string) string {
	return NewList(entries).Render()
}

// RenderPreview renders a theme name above a sample drawn with it
func (r *CatalogRenderer) RenderPreview(name, sample string) string {
	var b strings.Builder
	b.WriteString(NewLabelValue("Theme:", name).Render())
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(sample, "\n"))
	return b.String()
}

// RenderCount renders the number of themes found
func (r *CatalogRenderer) RenderCount(n int) string {
	return fmt.Sprintf("%s theme(s) available", Success.Render(fmt.Sprintf("%d", n)))
}
