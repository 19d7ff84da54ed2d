package post

import (
	"context"
	"time"

	"github.com/secmon-lab/alertpost/pkg/domain/types"
	"github.com/secmon-lab/alertpost/pkg/utils/clock"
	"github.com/secmon-lab/alertpost/pkg/utils/sanitize"
)

// TagActive is attached to every post created from a notification.
const TagActive = "Active"

// Names of the categories every alert post belongs to.
const (
	CategoryAlertSU = "alertsu"
	CategoryAlert   = "alert"
)

// AlertCategoryNames returns the category names resolved for alert posts, in
// the order their IDs are stored.
func AlertCategoryNames() []string {
	return []string{CategoryAlertSU, CategoryAlert}
}

// Notification is the document posted by the mass notification service. Only
// title and body are used.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type Post struct {
	ID         types.PostID       `json:"id"`
	Title      string             `json:"title"`
	Content    string             `json:"content"`
	AuthorID   types.AuthorID     `json:"author_id"`
	Status     types.PostStatus   `json:"status"`
	Categories []types.CategoryID `json:"categories"`
	Tags       []string           `json:"tags"`
	CreatedAt  time.Time          `json:"created_at"`
}

// NewAlert builds a published post from a notification. The title is reduced
// to plain text and the body to the safe post content subset.
func NewAlert(ctx context.Context, n Notification, authorID types.AuthorID, categories []types.CategoryID) Post {
	return Post{
		ID:         types.NewPostID(),
		Title:      sanitize.Text(n.Title),
		Content:    sanitize.PostContent(n.Body),
		AuthorID:   authorID,
		Status:     types.PostStatusPublish,
		Categories: categories,
		Tags:       []string{TagActive},
		CreatedAt:  clock.Now(ctx),
	}
}

type Category struct {
	ID   types.CategoryID `json:"id"`
	Name string           `json:"name"`
}
