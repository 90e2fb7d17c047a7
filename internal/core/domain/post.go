package domain

import (
	"html/template"
	"time"
)

// Post is a published blog entry. Date is fixed at creation time and never
// changes on edit; the author is likewise preserved across edits.
type Post struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Title      string    `json:"title" bson:"title"`
	Subtitle   string    `json:"subtitle" bson:"subtitle"`
	Body       string    `json:"body" bson:"body"`
	ImgURL     string    `json:"img_url" bson:"img_url"`
	AuthorID   string    `json:"author_id" bson:"author_id"`
	AuthorName string    `json:"author_name" bson:"author_name"`
	Date       time.Time `json:"date" bson:"date"`
}

// DisplayDate renders the creation date the way post pages show it.
func (p *Post) DisplayDate() string {
	return p.Date.Format("January 02, 2006")
}

// HTMLBody marks the stored body as markup so templates render it instead of
// escaping it. Bodies are admin-authored rich text that already passed
// through the Normalizer; tightening what survives to this point belongs
// there, not here.
func (p *Post) HTMLBody() template.HTML {
	return template.HTML(p.Body)
}
