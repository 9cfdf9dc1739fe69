package models

import "time"

// Asset is an uploaded flower or charm template.
type Asset struct {
	ID         string    `json:"id" db:"id"`
	Kind       AssetKind `json:"kind" db:"-"`
	Name       string    `json:"name" db:"name"`
	Owner      UserID    `json:"owner" db:"owner_id"`
	ImageData  string    `json:"imageData" db:"image_data"` // base64 of the uploaded bytes
	Thumbnail  string    `json:"thumbnail" db:"thumbnail"`  // identical copy of ImageData
	IsPreset   bool      `json:"isPreset" db:"is_preset"`
	UsageCount int64     `json:"usageCount" db:"usage_count"`
	Shape      string    `json:"shape,omitempty" db:"shape"`         // charms only
	ObjectKey  string    `json:"objectKey,omitempty" db:"object_key"` // mirrored blob, empty when storage is disabled
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// AllowedAssetExtensions is the upload allow-list, lower case without dot.
var AllowedAssetExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"svg":  {},
}

// DefaultCharmShape is used when a charm upload names no shape.
const DefaultCharmShape = "circle"
