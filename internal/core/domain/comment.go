package domain

import "time"

// Comment is a reader's remark on a post. Comments are immutable once
// stored and are removed only when their parent post is deleted.
type Comment struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	PostID     string    `json:"post_id" bson:"post_id"`
	AuthorID   string    `json:"author_id" bson:"author_id"`
	AuthorName string    `json:"author_name" bson:"author_name"`
	Body       string    `json:"body" bson:"body"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
