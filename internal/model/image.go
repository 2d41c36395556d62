package model

// Image is an uploaded picture stored in object storage.
// It is not persisted in the database; callers save URL on the owning record.
type Image struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}
