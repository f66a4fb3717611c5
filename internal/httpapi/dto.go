package httpapi

import (
	"time"

	"github.com/piwi3910/cargostow/internal/stowage"
)

// ItemDTO is the JSON wire shape for an Item, mirroring the items CSV
// column names so the same field vocabulary works whether a client posts
// CSV (via internal/importer) or JSON straight to this façade. Unlike
// the CSV "N/A" sentinel, the JSON form uses null for "never expires"
// and "unlimited uses" — idiomatic for this wire format, and still
// translated into the same *time.Time / *int the core expects.
type ItemDTO struct {
	ItemID        string     `json:"item_id"`
	Name          string     `json:"name"`
	WidthCm       float64    `json:"width_cm"`
	DepthCm       float64    `json:"depth_cm"`
	HeightCm      float64    `json:"height_cm"`
	MassKg        float64    `json:"mass_kg"`
	Priority      int        `json:"priority"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	UsageLimit    *int       `json:"usage_limit"`
	PreferredZone string     `json:"preferred_zone"`
}

func (d ItemDTO) toItem() stowage.Item {
	return stowage.Item{
		ID:            d.ItemID,
		Name:          d.Name,
		Width:         d.WidthCm,
		Depth:         d.DepthCm,
		Height:        d.HeightCm,
		Mass:          d.MassKg,
		Priority:      d.Priority,
		Expiry:        d.ExpiryDate,
		UsageLimit:    d.UsageLimit,
		PreferredZone: d.PreferredZone,
	}
}

func itemToDTO(it stowage.Item) ItemDTO {
	return ItemDTO{
		ItemID:        it.ID,
		Name:          it.Name,
		WidthCm:       it.Width,
		DepthCm:       it.Depth,
		HeightCm:      it.Height,
		MassKg:        it.Mass,
		Priority:      it.Priority,
		ExpiryDate:    it.Expiry,
		UsageLimit:    it.UsageLimit,
		PreferredZone: it.PreferredZone,
	}
}

// ContainerDTO is the JSON wire shape for an (empty) container
// definition, mirroring the containers CSV columns.
type ContainerDTO struct {
	ContainerID string  `json:"container_id"`
	Zone        string  `json:"zone"`
	WidthCm     float64 `json:"width_cm"`
	DepthCm     float64 `json:"depth_cm"`
	HeightCm    float64 `json:"height_cm"`
}

func (d ContainerDTO) toContainer() *stowage.Container {
	return stowage.NewContainer(d.ContainerID, d.Zone, d.WidthCm, d.DepthCm, d.HeightCm)
}

// PlacementDTO describes one item's assignment inside a container, in
// the export coordinate convention: position is the minimum corner,
// z sign-flipped for the visualizer.
type PlacementDTO struct {
	ItemID      string  `json:"item_id"`
	ContainerID string  `json:"container_id"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Z           float64 `json:"z"`
	Width       float64 `json:"width"`
	Depth       float64 `json:"depth"`
	Height      float64 `json:"height"`
}

func placementsToDTOs(containers []*stowage.Container) []PlacementDTO {
	var out []PlacementDTO
	for _, c := range containers {
		for _, p := range c.Placements {
			out = append(out, PlacementDTO{
				ItemID:      p.Item.ID,
				ContainerID: c.ID,
				X:           p.Position.X,
				Y:           p.Position.Y,
				Z:           -p.Position.Z,
				Width:       p.Orientation.W,
				Depth:       p.Orientation.D,
				Height:      p.Orientation.H,
			})
		}
	}
	return out
}

func containersFromDTOs(dtos []ContainerDTO) []*stowage.Container {
	out := make([]*stowage.Container, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toContainer())
	}
	return out
}

func itemsFromDTOs(dtos []ItemDTO) []stowage.Item {
	out := make([]stowage.Item, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toItem())
	}
	return out
}
