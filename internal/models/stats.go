package models

// Stats is the gallery-wide aggregate recomputed on every request.
type Stats struct {
	TotalsByKind map[Kind]int `json:"totalsByKind"`
	TotalUsers   int          `json:"totalUsers"`
	TotalUploads int          `json:"totalUploads"`
	TotalLikes   int64        `json:"totalLikes"`
}

// ColorCount is one entry of the color popularity ranking.
type ColorCount struct {
	Color string `json:"color"`
	Count int    `json:"count"`
}

// GalleryStats summarizes the creations of one kind.
type GalleryStats struct {
	Kind                Kind         `json:"kind"`
	TotalCreations      int          `json:"totalCreations"`
	Artists             []string     `json:"artists"`
	PopularColors       []ColorCount `json:"popularColors"`
	AverageCreationTime float64      `json:"averageCreationTime"`
}

// Profile is a user together with the creations they own.
type Profile struct {
	User      User                `json:"user"`
	Creations map[Kind][]Creation `json:"creations"`
}
