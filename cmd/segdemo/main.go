// Command segdemo renders the segmentation of a clipped primitive to PNG.
//
// Masked segments are tinted, segment outlines are drawn thin and edges on
// the outer boundary are drawn thick.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	segment "github.com/gogpu/gg-segment"
)

func main() {
	var (
		width   = flag.Int("width", 640, "image width")
		height  = flag.Int("height", 480, "image height")
		radius  = flag.Float64("radius", 48, "corner radius of the rounded clip")
		holes   = flag.Int("holes", 3, "number of clip-out rectangles")
		output  = flag.String("output", "segments.png", "output file")
		verbose = flag.Bool("v", false, "log build diagnostics")
	)
	flag.Parse()

	if *verbose {
		segment.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	w, h := float64(*width), float64(*height)
	segs := buildSegments(w, h, *radius, *holes)

	dc := gg.NewContext(*width, *height)
	defer dc.Close()

	dc.ClearWithColor(gg.RGB(0.12, 0.12, 0.15))
	for _, s := range segs {
		drawSegment(dc, s)
	}

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("%d segments saved to %s (%dx%d)\n", len(segs), *output, *width, *height)
}

func buildSegments(w, h, radius float64, holes int) []segment.Segment {
	b := segment.NewBuilder(segment.R(0, 0, w, h), segment.R(16, 16, w-16, h-16))

	radii := segment.UniformRadii(radius)
	b.Push(segment.R(w*0.1, h*0.1, w*0.9, h*0.9), &radii, segment.Clip)

	holeRadii := segment.UniformRadii(radius / 4)
	step := w * 0.6 / float64(max(holes, 1))
	for i := range holes {
		x := w*0.2 + float64(i)*step
		r := segment.R(x, h*0.4, x+step*0.6, h*0.6)
		if i%2 == 0 {
			b.PushRect(r, segment.ClipOut)
		} else {
			b.Push(r, &holeRadii, segment.ClipOut)
		}
	}
	return b.Segments()
}

func drawSegment(dc *gg.Context, s segment.Segment) {
	r := s.Rect

	if s.HasMask {
		dc.SetRGBA(0.95, 0.45, 0.25, 0.85)
	} else {
		dc.SetRGBA(0.25, 0.55, 0.95, 0.85)
	}
	dc.DrawRectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
	_ = dc.Fill()

	dc.SetRGB(0.9, 0.9, 0.9)
	dc.SetLineWidth(1)
	dc.DrawRectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
	_ = dc.Stroke()

	dc.SetRGB(1, 0.85, 0)
	dc.SetLineWidth(3)
	edges := []struct {
		flag           segment.EdgeFlags
		x0, y0, x1, y1 float64
	}{
		{segment.EdgeLeft, r.Min.X, r.Min.Y, r.Min.X, r.Max.Y},
		{segment.EdgeTop, r.Min.X, r.Min.Y, r.Max.X, r.Min.Y},
		{segment.EdgeRight, r.Max.X, r.Min.Y, r.Max.X, r.Max.Y},
		{segment.EdgeBottom, r.Min.X, r.Max.Y, r.Max.X, r.Max.Y},
	}
	for _, e := range edges {
		if !s.EdgeFlags.Has(e.flag) {
			continue
		}
		dc.MoveTo(e.x0, e.y0)
		dc.LineTo(e.x1, e.y1)
		_ = dc.Stroke()
	}
}
