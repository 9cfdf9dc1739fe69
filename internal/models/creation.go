package models

import (
	"encoding/json"
	"strings"
	"time"
)

// CanvasSize is the painting surface in pixels.
type CanvasSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// PaintingPayload holds painting-specific data.
type PaintingPayload struct {
	ProductType  string      `json:"productType"`
	CanvasSize   *CanvasSize `json:"canvasSize,omitempty"`
	ImageData    string      `json:"imageData"`
	BrushSizes   []int       `json:"brushSizes,omitempty"`
	Strokes      int         `json:"strokes"`
	CreationTime float64     `json:"creationTime"`
}

// ArrangementPayload holds flower arrangement data.
type ArrangementPayload struct {
	VesselType      string          `json:"vesselType"`
	FlowerCount     int             `json:"flowerCount"`
	ArrangementData json.RawMessage `json:"arrangementData,omitempty"`
	ImageSnapshot   string          `json:"imageSnapshot"`
	CreationTime    float64         `json:"creationTime"`
}

// BraceletPayload holds charm bracelet data.
type BraceletPayload struct {
	BandType      string          `json:"bandType"`
	CharmCount    int             `json:"charmCount"`
	BraceletData  json.RawMessage `json:"braceletData,omitempty"`
	ImageSnapshot string          `json:"imageSnapshot"`
	CreationTime  float64         `json:"creationTime"`
}

// Creation is a finished piece stored in the gallery.
// Exactly one of Painting, Arrangement or Bracelet is set, matching Kind.
type Creation struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Owner       UserID    `json:"owner,omitempty"`
	ArtistName  string    `json:"artistName"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ColorsUsed  []string  `json:"colorsUsed,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	Likes       int64     `json:"likes"`
	Views       int64     `json:"views"`

	Painting    *PaintingPayload    `json:"painting,omitempty"`
	Arrangement *ArrangementPayload `json:"arrangement,omitempty"`
	Bracelet    *BraceletPayload    `json:"bracelet,omitempty"`
}

// Payload returns the kind-specific payload, or nil.
func (c Creation) Payload() any {
	switch c.Kind {
	case KindPainting:
		return c.Painting
	case KindArrangement:
		return c.Arrangement
	case KindBracelet:
		return c.Bracelet
	}
	return nil
}

// SetPayload decodes a stored payload document into the field matching Kind.
func (c *Creation) SetPayload(raw []byte) error {
	if len(raw) == 0 {
		return nil
	}
	switch c.Kind {
	case KindPainting:
		c.Painting = &PaintingPayload{}
		return json.Unmarshal(raw, c.Painting)
	case KindArrangement:
		c.Arrangement = &ArrangementPayload{}
		return json.Unmarshal(raw, c.Arrangement)
	case KindBracelet:
		c.Bracelet = &BraceletPayload{}
		return json.Unmarshal(raw, c.Bracelet)
	}
	return nil
}

// CreationTime returns the time the artist spent, in seconds.
func (c Creation) CreationTime() float64 {
	switch {
	case c.Painting != nil:
		return c.Painting.CreationTime
	case c.Arrangement != nil:
		return c.Arrangement.CreationTime
	case c.Bracelet != nil:
		return c.Bracelet.CreationTime
	}
	return 0
}

// FilterValue returns the value of an allow-listed filter field.
func (c Creation) FilterValue(field string) (string, bool) {
	switch {
	case field == "owner":
		return string(c.Owner), true
	case field == "productType" && c.Painting != nil:
		return c.Painting.ProductType, true
	case field == "vesselType" && c.Arrangement != nil:
		return c.Arrangement.VesselType, true
	case field == "bandType" && c.Bracelet != nil:
		return c.Bracelet.BandType, true
	}
	return "", false
}

// CreationFields is the raw input of an insert. Empty values count as missing.
type CreationFields struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ColorsUsed  []string `json:"colorsUsed"`

	ProductType string      `json:"productType"`
	CanvasSize  *CanvasSize `json:"canvasSize"`
	ImageData   string      `json:"imageData"`
	BrushSizes  []int       `json:"brushSizes"`
	Strokes     int         `json:"strokes"`

	VesselType      string          `json:"vesselType"`
	FlowerCount     int             `json:"flowerCount"`
	ArrangementData json.RawMessage `json:"arrangementData"`

	BandType     string          `json:"bandType"`
	CharmCount   int             `json:"charmCount"`
	BraceletData json.RawMessage `json:"braceletData"`

	ImageSnapshot string  `json:"imageSnapshot"`
	CreationTime  float64 `json:"creationTime"`
}

// Apply copies the common fields and the payload matching c.Kind onto c.
func (f CreationFields) Apply(c *Creation) {
	c.Title = strings.TrimSpace(f.Title)
	c.Description = f.Description
	c.ColorsUsed = f.ColorsUsed

	switch c.Kind {
	case KindPainting:
		c.Painting = &PaintingPayload{
			ProductType:  f.ProductType,
			CanvasSize:   f.CanvasSize,
			ImageData:    f.ImageData,
			BrushSizes:   f.BrushSizes,
			Strokes:      f.Strokes,
			CreationTime: f.CreationTime,
		}
	case KindArrangement:
		c.Arrangement = &ArrangementPayload{
			VesselType:      f.VesselType,
			FlowerCount:     f.FlowerCount,
			ArrangementData: f.ArrangementData,
			ImageSnapshot:   f.ImageSnapshot,
			CreationTime:    f.CreationTime,
		}
	case KindBracelet:
		c.Bracelet = &BraceletPayload{
			BandType:      f.BandType,
			CharmCount:    f.CharmCount,
			BraceletData:  f.BraceletData,
			ImageSnapshot: f.ImageSnapshot,
			CreationTime:  f.CreationTime,
		}
	}
}

// CreationQuery describes one page of a creation listing.
type CreationQuery struct {
	Kind    Kind
	Filters map[string]string // equality filters, keyed by allow-listed field
	SortBy  string            // one of SortFields
	Desc    bool
	Limit   int
	Offset  int
}

// SortFields maps accepted sort keys to storage columns.
var SortFields = map[string]string{
	"createdAt":  "created_at",
	"created_at": "created_at",
	"likes":      "likes",
	"views":      "views",
	"title":      "title",
}

// DefaultSort orders listings newest first.
const DefaultSort = "-createdAt"

// ParseSort splits "field" or "-field" into a normalized field and direction.
func ParseSort(s string) (field string, desc bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = DefaultSort
	}
	if strings.HasPrefix(s, "-") {
		desc = true
		s = s[1:]
	}
	col, ok := SortFields[s]
	if !ok {
		return "", false, NewValidationError("", "sortBy", "unsupported sort field "+s)
	}
	for k, v := range SortFields {
		if v == col && k != col {
			return k, desc, nil
		}
	}
	return s, desc, nil
}

// Less compares two creations on a normalized sort field.
func Less(a, b Creation, field string) bool {
	switch field {
	case "likes":
		return a.Likes < b.Likes
	case "views":
		return a.Views < b.Views
	case "title":
		return a.Title < b.Title
	default:
		return a.CreatedAt.Before(b.CreatedAt)
	}
}
