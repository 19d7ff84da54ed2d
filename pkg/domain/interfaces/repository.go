package interfaces

import (
	"context"

	"github.com/secmon-lab/alertpost/pkg/domain/model/author"
	"github.com/secmon-lab/alertpost/pkg/domain/model/post"
	"github.com/secmon-lab/alertpost/pkg/domain/model/setting"
	"github.com/secmon-lab/alertpost/pkg/domain/types"
)

// Repository is the host store of settings, categories, authors and posts.
type Repository interface {
	// GetConfig returns nil without error when the configuration has never been saved.
	GetConfig(ctx context.Context) (*setting.Config, error)
	PutConfig(ctx context.Context, cfg setting.Config) error

	// GetCategoryByName returns nil without error when no category has the name.
	GetCategoryByName(ctx context.Context, name string) (*post.Category, error)
	PutCategory(ctx context.Context, category post.Category) error

	// CreatePost stores a new post. A failure may carry *errs.APIError that is
	// reported to the client unchanged.
	CreatePost(ctx context.Context, p post.Post) (types.PostID, error)
	GetPost(ctx context.Context, id types.PostID) (*post.Post, error)
	// ListPosts returns posts with the status, newest first.
	ListPosts(ctx context.Context, status types.PostStatus, limit int) ([]*post.Post, error)

	PutAuthor(ctx context.Context, a author.Author) error
	// ListAuthors returns authors having one of the roles, ordered by ID.
	ListAuthors(ctx context.Context, roles []types.Role) ([]*author.Author, error)
}
