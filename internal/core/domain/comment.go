package domain

import "time"

// Comment is a single entry submitted through the public comment widget,
// grouped by the page it was left on.
type Comment struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	PageID    string    `json:"page_id" bson:"page_id"`
	Name      string    `json:"name" bson:"name"`
	Comment   string    `json:"comment" bson:"comment"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
