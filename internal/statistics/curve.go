package statistics

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Series is one named line of a learning curve.
type Series struct {
	Name string
	X, Y []float64
}

// RunningAverage smooths per-hand scores with a trailing window, emitting one
// point every shift hands. Point x is the index of the last hand in the window.
func RunningAverage(scores []float64, window, shift int) Series {
	var s Series
	if window <= 0 || shift <= 0 || len(scores) < window {
		return s
	}
	for end := window; end <= len(scores); end += shift {
		s.X = append(s.X, float64(end-1))
		s.Y = append(s.Y, floats.Sum(scores[end-window:end])/float64(window))
	}
	return s
}

// SaveLearningCurve renders the series as lines and writes the image to path.
// The format follows the file extension (png, svg, pdf). The file is
// replaced atomically, so a reader never sees a partial image.
func SaveLearningCurve(path, title string, series ...Series) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Hand"
	p.Y.Label.Text = "Average chips"

	for i, s := range series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("series %q: %d x values for %d y values", s.Name, len(s.X), len(s.Y))
		}
		points := make(plotter.XYs, len(s.X))
		for j := range s.X {
			points[j].X = s.X[j]
			points[j].Y = s.Y[j]
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			return fmt.Errorf("series %q: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	w, err := p.WriterTo(10*vg.Inch, 6*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("save learning curve: %w", err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return fmt.Errorf("render learning curve: %w", err)
	}
	return writeFileAtomic(path, buf.Bytes())
}

// writeFileAtomic writes data to a temporary file in the same directory and
// renames it over filename.
func writeFileAtomic(filename string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err = os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
