// Package export renders trajectory frames to static files.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/trajview/trajview/internal/camera"
	"github.com/trajview/trajview/internal/scene"
)

// SVGOptions control frame rendering.
type SVGOptions struct {
	Width, Height int
	PointRadius   float64
	Background    string
	Fill          string
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:       1280,
		Height:      720,
		PointRadius: 3,
		Background:  "#0a0a0a",
		Fill:        "#e0e0e0",
	}
}

// FrameSVG renders a frame through the camera into an SVG document.
// Particles outside the viewport are culled.
func FrameSVG(f *scene.Frame, cam *camera.Camera, opts SVGOptions) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, opts.Width, opts.Height, opts.Width, opts.Height, opts.Background, opts.Fill))

	if f != nil {
		margin := opts.PointRadius
		for _, p := range f.Positions {
			sx, sy := cam.ToScreen(p, opts.Width, opts.Height)
			if sx < -margin || sx > float64(opts.Width)+margin ||
				sy < -margin || sy > float64(opts.Height)+margin {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f"/>`+"\n",
				sx, sy, opts.PointRadius))
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// WriteFrameSVG renders a frame and writes it to path.
func WriteFrameSVG(path string, f *scene.Frame, cam *camera.Camera, opts SVGOptions) error {
	return os.WriteFile(path, []byte(FrameSVG(f, cam, opts)), 0644)
}
