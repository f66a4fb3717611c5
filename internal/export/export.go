// Package export serializes a packed arrangement to CSV and JSON for
// downstream consumers, in particular the 3-D visualizer, which expects
// z flipped in sign from the container-local frame.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/piwi3910/cargostow/internal/stowage"
)

// ArrangementCSV renders every placement across containers as CSV with
// the header: Item ID, Container ID, Coordinates (W1,D1,H1),
// Coordinates (W2,D2,H2). Coordinates are the container-local minimum
// and maximum corners, unflipped — this format mirrors the adapter's
// own coordinate frame, not the visualizer's.
func ArrangementCSV(containers []*stowage.Container) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Item ID", "Container ID", "Coordinates (W1,D1,H1)", "Coordinates (W2,D2,H2)"}); err != nil {
		return "", err
	}
	for _, c := range containers {
		for _, p := range c.Placements {
			start := fmt.Sprintf("(%.2f,%.2f,%.2f)", p.Position.X, p.Position.Z, p.Position.Y)
			end := fmt.Sprintf("(%.2f,%.2f,%.2f)",
				p.Position.X+p.Orientation.W, p.Position.Z+p.Orientation.D, p.Position.Y+p.Orientation.H)
			if err := w.Write([]string{p.Item.ID, c.ID, start, end}); err != nil {
				return "", err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// VisualizerItem is one placed item in the visualizer's JSON schema.
type VisualizerItem struct {
	Size     VisualizerSize     `json:"size"`
	Position VisualizerPosition `json:"position"`
}

// VisualizerSize is an item's placed extent.
type VisualizerSize struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
}

// VisualizerPosition is an item's minimum corner, with z sign-flipped so
// the visualizer sees +z pointing outward from the open face.
type VisualizerPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ArrangementJSON renders every placement across containers in the
// visualizer's JSON schema: {"items": [...]}.
func ArrangementJSON(containers []*stowage.Container) ([]byte, error) {
	var items []VisualizerItem
	for _, c := range containers {
		for _, p := range c.Placements {
			items = append(items, VisualizerItem{
				Size: VisualizerSize{Width: p.Orientation.W, Depth: p.Orientation.D, Height: p.Orientation.H},
				Position: VisualizerPosition{
					X: p.Position.X,
					Y: p.Position.Y,
					Z: -p.Position.Z,
				},
			})
		}
	}
	return json.MarshalIndent(map[string]any{"items": items}, "", "  ")
}
