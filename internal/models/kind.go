package models

import "strings"

// Kind is the discriminant of a creation.
type Kind string

const (
	KindPainting    Kind = "painting"
	KindArrangement Kind = "arrangement"
	KindBracelet    Kind = "bracelet"
)

// Kinds lists every creation kind in display order.
var Kinds = []Kind{KindPainting, KindArrangement, KindBracelet}

// Valid reports whether k is a known creation kind.
func (k Kind) Valid() bool {
	switch k {
	case KindPainting, KindArrangement, KindBracelet:
		return true
	}
	return false
}

// Collection returns the plural name used for routes and storage, e.g. "paintings".
func (k Kind) Collection() string {
	return string(k) + "s"
}

// FilterField returns the kind-specific payload field accepted as an equality filter.
func (k Kind) FilterField() string {
	switch k {
	case KindPainting:
		return "productType"
	case KindArrangement:
		return "vesselType"
	case KindBracelet:
		return "bandType"
	}
	return ""
}

// ParseKind converts a raw creation type into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", NewValidationError(s, "creationType", "must be one of painting, arrangement, bracelet")
	}
	return k, nil
}

// KindFromCollection resolves a plural collection name back to its Kind.
func KindFromCollection(collection string) (Kind, bool) {
	for _, k := range Kinds {
		if k.Collection() == collection {
			return k, true
		}
	}
	return "", false
}

// AssetKind distinguishes uploaded templates.
type AssetKind string

const (
	AssetFlower AssetKind = "flower"
	AssetCharm  AssetKind = "charm"
)

// AssetKinds lists every asset kind.
var AssetKinds = []AssetKind{AssetFlower, AssetCharm}

// Valid reports whether k is a known asset kind.
func (k AssetKind) Valid() bool {
	return k == AssetFlower || k == AssetCharm
}

// Collection returns the plural name, e.g. "flowers".
func (k AssetKind) Collection() string {
	return string(k) + "s"
}

// DefaultName is used when an upload carries no name.
func (k AssetKind) DefaultName() string {
	if k == AssetCharm {
		return "Custom Charm"
	}
	return "Custom Flower"
}

// AssetKindFromCollection resolves "flowers"/"charms" to an AssetKind.
func AssetKindFromCollection(collection string) (AssetKind, bool) {
	for _, k := range AssetKinds {
		if k.Collection() == collection {
			return k, true
		}
	}
	return "", false
}
