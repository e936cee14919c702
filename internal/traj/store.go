package traj

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/trajview/trajview/internal/scene"
)

const (
	metaFile   = "meta.json"
	framesFile = "frames.csv"
)

// Save writes a trajectory to dir, creating it if needed.
func Save(dir string, t *Trajectory) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	metaOut, err := os.Create(filepath.Join(dir, metaFile))
	if err != nil {
		return err
	}
	defer metaOut.Close()

	enc := json.NewEncoder(metaOut)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t.Meta); err != nil {
		return err
	}

	framesOut, err := os.Create(filepath.Join(dir, framesFile))
	if err != nil {
		return err
	}
	defer framesOut.Close()

	w := csv.NewWriter(framesOut)
	defer w.Flush()

	header := []string{"frame"}
	for i := 0; i < t.Meta.Particles; i++ {
		header = append(header, fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, frame := range t.frames {
		row := make([]string, 0, 1+2*len(frame))
		row = append(row, strconv.Itoa(i))
		for _, p := range frame {
			row = append(row,
				strconv.FormatFloat(p.X, 'f', 6, 64),
				strconv.FormatFloat(p.Y, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// Load reads a trajectory directory written by Save.
func Load(dir string) (*Trajectory, error) {
	metaData, err := os.ReadFile(filepath.Join(dir, metaFile))
	if err != nil {
		return nil, fmt.Errorf("traj: %s: %w", dir, err)
	}
	var meta Meta
	if err := json.Unmarshal(metaData, &meta); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, metaFile, err)
	}

	f, err := os.Open(filepath.Join(dir, framesFile))
	if err != nil {
		return nil, fmt.Errorf("traj: %s: %w", dir, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, framesFile, err)
	}
	if len(records) < 2 {
		return nil, ErrEmpty
	}

	// Skip the header row; each data row is index + x,y pairs.
	frames := make([][]scene.Vec2, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 3 || (len(rec)-1)%2 != 0 {
			return nil, fmt.Errorf("%w: row with %d fields", ErrCorrupt, len(rec))
		}
		frame := make([]scene.Vec2, 0, (len(rec)-1)/2)
		for j := 1; j < len(rec); j += 2 {
			x, errX := strconv.ParseFloat(rec[j], 64)
			y, errY := strconv.ParseFloat(rec[j+1], 64)
			if errX != nil || errY != nil {
				return nil, fmt.Errorf("%w: bad coordinate in frame %d", ErrCorrupt, len(frames))
			}
			frame = append(frame, scene.Vec2{X: x, Y: y})
		}
		frames = append(frames, frame)
	}

	return NewTrajectory(meta, frames)
}
