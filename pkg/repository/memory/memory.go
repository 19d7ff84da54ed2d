package memory

import (
	"context"
	"net/http"
	"slices"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/alertpost/pkg/domain/interfaces"
	"github.com/secmon-lab/alertpost/pkg/domain/model/author"
	"github.com/secmon-lab/alertpost/pkg/domain/model/errs"
	"github.com/secmon-lab/alertpost/pkg/domain/model/post"
	"github.com/secmon-lab/alertpost/pkg/domain/model/setting"
	"github.com/secmon-lab/alertpost/pkg/domain/types"
	"github.com/secmon-lab/alertpost/pkg/utils/errutil"
)

// Memory keeps everything in process. It is used for development and tests.
type Memory struct {
	mu sync.RWMutex

	config     *setting.Config
	categories map[string]*post.Category
	posts      map[types.PostID]*post.Post
	authors    map[types.AuthorID]*author.Author

	// Call counter for tracking method invocations
	callCounts map[string]int
	callMu     sync.RWMutex

	eb *goerr.Builder
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		categories: make(map[string]*post.Category),
		posts:      make(map[types.PostID]*post.Post),
		authors:    make(map[types.AuthorID]*author.Author),
		callCounts: make(map[string]int),
		eb:         goerr.NewBuilder(goerr.TV(errutil.RepositoryKey, "memory")),
	}
}

func (r *Memory) incrementCallCount(methodName string) {
	r.callMu.Lock()
	defer r.callMu.Unlock()
	r.callCounts[methodName]++
}

// GetCallCount returns the number of times a method has been called
func (r *Memory) GetCallCount(methodName string) int {
	r.callMu.RLock()
	defer r.callMu.RUnlock()
	return r.callCounts[methodName]
}

func (r *Memory) GetConfig(ctx context.Context) (*setting.Config, error) {
	r.incrementCallCount("GetConfig")
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.config == nil {
		return nil, nil
	}
	cfg := *r.config
	return &cfg, nil
}

func (r *Memory) PutConfig(ctx context.Context, cfg setting.Config) error {
	r.incrementCallCount("PutConfig")
	r.mu.Lock()
	defer r.mu.Unlock()

	r.config = &cfg
	return nil
}

func (r *Memory) GetCategoryByName(ctx context.Context, name string) (*post.Category, error) {
	r.incrementCallCount("GetCategoryByName")
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[name]
	if !ok {
		return nil, nil
	}
	category := *c
	return &category, nil
}

func (r *Memory) PutCategory(ctx context.Context, category post.Category) error {
	r.incrementCallCount("PutCategory")
	if category.Name == "" {
		return r.eb.New("category name is required",
			goerr.TV(errutil.CategoryIDKey, category.ID),
			goerr.T(errs.TagValidation))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.categories[category.Name] = &category
	return nil
}

func (r *Memory) CreatePost(ctx context.Context, p post.Post) (types.PostID, error) {
	r.incrementCallCount("CreatePost")
	if err := p.ID.Validate(); err != nil {
		return "", r.eb.Wrap(err, "invalid post ID", goerr.T(errs.TagValidation))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.posts[p.ID]; exists {
		return "", r.eb.Wrap(
			errs.NewAPIError(errs.CodeInsertFailed, "Could not insert post into the database", http.StatusInternalServerError),
			"post already exists",
			goerr.TV(errutil.PostIDKey, p.ID),
			goerr.T(errs.TagDatabase))
	}

	stored := p
	stored.Categories = slices.Clone(p.Categories)
	stored.Tags = slices.Clone(p.Tags)
	r.posts[p.ID] = &stored
	return p.ID, nil
}

func (r *Memory) GetPost(ctx context.Context, id types.PostID) (*post.Post, error) {
	r.incrementCallCount("GetPost")
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	found := *p
	return &found, nil
}

func (r *Memory) ListPosts(ctx context.Context, status types.PostStatus, limit int) ([]*post.Post, error) {
	r.incrementCallCount("ListPosts")
	r.mu.RLock()
	defer r.mu.RUnlock()

	var posts []*post.Post
	for _, p := range r.posts {
		if p.Status != status {
			continue
		}
		found := *p
		posts = append(posts, &found)
	}

	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (r *Memory) PutAuthor(ctx context.Context, a author.Author) error {
	r.incrementCallCount("PutAuthor")
	if err := a.Role.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid author", goerr.TV(errutil.AuthorIDKey, a.ID), goerr.T(errs.TagValidation))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.authors[a.ID] = &a
	return nil
}

func (r *Memory) ListAuthors(ctx context.Context, roles []types.Role) ([]*author.Author, error) {
	r.incrementCallCount("ListAuthors")
	r.mu.RLock()
	defer r.mu.RUnlock()

	var authors []*author.Author
	for _, a := range r.authors {
		if !slices.Contains(roles, a.Role) {
			continue
		}
		found := *a
		authors = append(authors, &found)
	}

	sort.Slice(authors, func(i, j int) bool {
		return authors[i].ID < authors[j].ID
	})
	return authors, nil
}
