package models

// Event types published to the gallery topic.
const (
	EventCreationCreated = "creation.created"
	EventCreationDeleted = "creation.deleted"
	EventCreationLiked   = "creation.liked"
	EventAssetUploaded   = "asset.uploaded"
)

// Event describes a gallery mutation, including the actor, the resource, the timestamp and the event type.
type Event struct {
	EventID    string `json:"event_id"`    // EventID is a unique identifier for the event.
	Type       string `json:"type"`        // Type is one of the Event* constants.
	ResourceID string `json:"resource_id"` // ResourceID is the creation or asset the event refers to.
	Kind       string `json:"kind"`        // Kind is the creation or asset kind.
	UserID     string `json:"user_id"`     // UserID is the actor, empty for anonymous likes.
	Timestamp  int64  `json:"timestamp"`   // Timestamp is the Unix time (in seconds) of the mutation.
}
