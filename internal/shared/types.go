package shared

import "context"

// Background task types
const (
	TypeDeleteMediaObjects = "media:delete_objects"
)

// DeleteObjectsPayload lists object-store keys to remove.
type DeleteObjectsPayload struct {
	Keys []string `json:"keys"`
}

// MediaCleaner schedules removal of stored objects referenced by public URLs.
// URLs the object store does not own are ignored.
type MediaCleaner interface {
	ScheduleDelete(ctx context.Context, urls ...string)
}
