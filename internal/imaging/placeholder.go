// Package imaging renders placeholder PNG files that point an analyst at
// the free imagery sources for a satellite target.
package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/truthscan/truthscan/internal/model"
)

const (
	imgWidth   = 800
	imgHeight  = 600
	marginLeft = 50
	lineHeight = 30
)

// Writer writes placeholder images into a target directory
type Writer struct {
	dir string
}

// NewWriter creates a writer rooted at dir (created on demand)
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteSitePlaceholder renders the placeholder PNG for one satellite
// target and returns the written path
func (w *Writer) WriteSitePlaceholder(site model.Entity, dateRange model.DateRange, sources []model.SourceLink) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create image dir: %w", err)
	}

	name := strings.ReplaceAll(site.Name, " ", "_")
	path := filepath.Join(w.dir, fmt.Sprintf("%s_%s_free.png", name, dateRange.End))

	lines := []string{
		fmt.Sprintf("Site: %s", site.Name),
		fmt.Sprintf("Coordinates: %g, %g", site.Lat(), site.Lng()),
		fmt.Sprintf("Date Range: %s to %s", dateRange.Start, dateRange.End),
		"",
		"FREE SATELLITE IMAGERY SOURCES:",
		"",
	}
	for _, s := range sources {
		lines = append(lines, s.Name+":", s.URL, "")
	}
	lines = append(lines,
		"ANALYSIS TIPS:",
		"- Compare with historical imagery when available",
		"- Look for new craters, debris fields, or structural damage",
		"- Check for smoke plumes or fire damage",
		"- Examine access roads for increased activity",
	)

	img := renderLines(lines)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create placeholder: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encode placeholder: %w", err)
	}
	return path, nil
}

// renderLines draws the text lines onto a light gray canvas
func renderLines(lines []string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))
	bg := color.RGBA{R: 240, G: 240, B: 240, A: 255}
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}

	y := 50
	for _, line := range lines {
		if y > imgHeight-lineHeight {
			break
		}
		d.Dot = fixed.P(marginLeft, y)
		d.DrawString(line)
		y += lineHeight
	}
	return img
}
