package repositories

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

// creationRecord is the flat on-disk shape of a creation in creations.json.
// Kind-specific fields sit next to the common ones.
type creationRecord struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Owner        string    `json:"owner,omitempty"`
	ArtistName   string    `json:"artistName"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	ColorsUsed   []string  `json:"colorsUsed,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	Likes        int64     `json:"likes"`
	Views        int64     `json:"views"`
	CreationTime float64   `json:"creationTime,omitempty"`

	ProductType string             `json:"productType,omitempty"`
	CanvasSize  *models.CanvasSize `json:"canvasSize,omitempty"`
	ImageData   string             `json:"imageData,omitempty"`
	BrushSizes  []int              `json:"brushSizes,omitempty"`
	Strokes     int                `json:"strokes,omitempty"`

	VesselType      string          `json:"vesselType,omitempty"`
	FlowerCount     int             `json:"flowerCount,omitempty"`
	ArrangementData json.RawMessage `json:"arrangementData,omitempty"`

	BandType     string          `json:"bandType,omitempty"`
	CharmCount   int             `json:"charmCount,omitempty"`
	BraceletData json.RawMessage `json:"braceletData,omitempty"`

	ImageSnapshot string `json:"imageSnapshot,omitempty"`

	// Keys written by the first painting-only gallery. Read, never written.
	LegacyArtistName   string             `json:"artist_name,omitempty"`
	LegacyTitle        string             `json:"painting_title,omitempty"`
	LegacyImageData    string             `json:"image_data,omitempty"`
	LegacyCanvasSize   *models.CanvasSize `json:"canvas_size,omitempty"`
	LegacyColorsUsed   []string           `json:"colors_used,omitempty"`
	LegacyBrushSize    int                `json:"brush_size,omitempty"`
	LegacyTimestamp    string             `json:"timestamp,omitempty"`
	LegacyCreationTime json.RawMessage    `json:"creation_time,omitempty"`
}

var legacyTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

func parseLegacyTime(s string) time.Time {
	for _, layout := range legacyTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// legacyNumber accepts a JSON number or a numeric string, anything else is 0.
func legacyNumber(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n
		}
	}
	return 0
}

// fromLegacy fills empty fields from the snake_case keys.
func (r *creationRecord) fromLegacy() {
	if r.ArtistName == "" {
		r.ArtistName = r.LegacyArtistName
	}
	if r.Title == "" {
		r.Title = r.LegacyTitle
	}
	if r.ImageData == "" {
		r.ImageData = r.LegacyImageData
	}
	if r.CanvasSize == nil {
		r.CanvasSize = r.LegacyCanvasSize
	}
	if r.ColorsUsed == nil {
		r.ColorsUsed = r.LegacyColorsUsed
	}
	if r.BrushSizes == nil && r.LegacyBrushSize > 0 {
		r.BrushSizes = []int{r.LegacyBrushSize}
	}
	if r.CreatedAt.IsZero() && r.LegacyTimestamp != "" {
		r.CreatedAt = parseLegacyTime(r.LegacyTimestamp)
	}
	if r.CreationTime == 0 {
		r.CreationTime = legacyNumber(r.LegacyCreationTime)
	}
}

func (r creationRecord) toModel() models.Creation {
	r.fromLegacy()

	kind := models.Kind(r.Kind)
	// Records without a kind predate arrangements and bracelets.
	if kind == "" {
		kind = models.KindPainting
	}

	c := models.Creation{
		ID:          r.ID,
		Kind:        kind,
		Owner:       models.UserID(r.Owner),
		ArtistName:  r.ArtistName,
		Title:       r.Title,
		Description: r.Description,
		ColorsUsed:  r.ColorsUsed,
		CreatedAt:   r.CreatedAt,
		Likes:       r.Likes,
		Views:       r.Views,
	}

	switch kind {
	case models.KindPainting:
		c.Painting = &models.PaintingPayload{
			ProductType:  r.ProductType,
			CanvasSize:   r.CanvasSize,
			ImageData:    r.ImageData,
			BrushSizes:   r.BrushSizes,
			Strokes:      r.Strokes,
			CreationTime: r.CreationTime,
		}
	case models.KindArrangement:
		c.Arrangement = &models.ArrangementPayload{
			VesselType:      r.VesselType,
			FlowerCount:     r.FlowerCount,
			ArrangementData: r.ArrangementData,
			ImageSnapshot:   r.ImageSnapshot,
			CreationTime:    r.CreationTime,
		}
	case models.KindBracelet:
		c.Bracelet = &models.BraceletPayload{
			BandType:      r.BandType,
			CharmCount:    r.CharmCount,
			BraceletData:  r.BraceletData,
			ImageSnapshot: r.ImageSnapshot,
			CreationTime:  r.CreationTime,
		}
	}
	return c
}

func newCreationRecord(c models.Creation) creationRecord {
	r := creationRecord{
		ID:           c.ID,
		Kind:         string(c.Kind),
		Owner:        string(c.Owner),
		ArtistName:   c.ArtistName,
		Title:        c.Title,
		Description:  c.Description,
		ColorsUsed:   c.ColorsUsed,
		CreatedAt:    c.CreatedAt,
		Likes:        c.Likes,
		Views:        c.Views,
		CreationTime: c.CreationTime(),
	}

	if p := c.Painting; p != nil {
		r.ProductType = p.ProductType
		r.CanvasSize = p.CanvasSize
		r.ImageData = p.ImageData
		r.BrushSizes = p.BrushSizes
		r.Strokes = p.Strokes
	}
	if a := c.Arrangement; a != nil {
		r.VesselType = a.VesselType
		r.FlowerCount = a.FlowerCount
		r.ArrangementData = a.ArrangementData
		r.ImageSnapshot = a.ImageSnapshot
	}
	if b := c.Bracelet; b != nil {
		r.BandType = b.BandType
		r.CharmCount = b.CharmCount
		r.BraceletData = b.BraceletData
		r.ImageSnapshot = b.ImageSnapshot
	}
	return r
}

func toCreationRecords(items []models.Creation) []creationRecord {
	records := make([]creationRecord, 0, len(items))
	for _, c := range items {
		records = append(records, newCreationRecord(c))
	}
	return records
}

func fromCreationRecords(records []creationRecord) []models.Creation {
	items := make([]models.Creation, 0, len(records))
	for _, r := range records {
		items = append(items, r.toModel())
	}
	return items
}
