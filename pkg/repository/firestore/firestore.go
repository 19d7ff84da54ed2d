package firestore

import (
	"context"
	"net/http"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/alertpost/pkg/domain/interfaces"
	"github.com/secmon-lab/alertpost/pkg/domain/model/author"
	"github.com/secmon-lab/alertpost/pkg/domain/model/errs"
	"github.com/secmon-lab/alertpost/pkg/domain/model/post"
	"github.com/secmon-lab/alertpost/pkg/domain/model/setting"
	"github.com/secmon-lab/alertpost/pkg/domain/types"
	"github.com/secmon-lab/alertpost/pkg/utils/errutil"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Firestore struct {
	db *firestore.Client
	eb *goerr.Builder
}

var _ interfaces.Repository = &Firestore{}

func New(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	db, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	return &Firestore{
		db: db,
		eb: goerr.NewBuilder(
			goerr.TV(errutil.RepositoryKey, "firestore"),
			goerr.V("project_id", projectID),
			goerr.V("database_id", databaseID),
		),
	}, nil
}

func (r *Firestore) Close() error {
	return r.db.Close()
}

const (
	CollectionOptions    = "options"
	CollectionCategories = "categories"
	CollectionPosts      = "posts"
	CollectionAuthors    = "authors"
)

func (r *Firestore) GetConfig(ctx context.Context) (*setting.Config, error) {
	doc, err := r.db.Collection(CollectionOptions).Doc(setting.OptionName).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, r.eb.Wrap(err, "failed to get config",
			goerr.TV(errutil.OptionNameKey, setting.OptionName),
			goerr.T(errs.TagDatabase))
	}

	var cfg setting.Config
	if err := doc.DataTo(&cfg); err != nil {
		return nil, r.eb.Wrap(err, "failed to decode config",
			goerr.TV(errutil.OptionNameKey, setting.OptionName),
			goerr.T(errs.TagDatabase))
	}
	return &cfg, nil
}

func (r *Firestore) PutConfig(ctx context.Context, cfg setting.Config) error {
	if _, err := r.db.Collection(CollectionOptions).Doc(setting.OptionName).Set(ctx, cfg); err != nil {
		return r.eb.Wrap(err, "failed to put config",
			goerr.TV(errutil.OptionNameKey, setting.OptionName),
			goerr.T(errs.TagDatabase))
	}
	return nil
}

func (r *Firestore) GetCategoryByName(ctx context.Context, name string) (*post.Category, error) {
	iter := r.db.Collection(CollectionCategories).Where("Name", "==", name).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, r.eb.Wrap(err, "failed to get category",
			goerr.TV(errutil.CategoryNameKey, name),
			goerr.T(errs.TagDatabase))
	}

	var category post.Category
	if err := doc.DataTo(&category); err != nil {
		return nil, r.eb.Wrap(err, "failed to decode category",
			goerr.TV(errutil.CategoryNameKey, name),
			goerr.T(errs.TagDatabase))
	}
	return &category, nil
}

func (r *Firestore) PutCategory(ctx context.Context, category post.Category) error {
	if category.Name == "" {
		return r.eb.New("category name is required",
			goerr.TV(errutil.CategoryIDKey, category.ID),
			goerr.T(errs.TagValidation))
	}

	docID := strconv.FormatInt(int64(category.ID), 10)
	if _, err := r.db.Collection(CollectionCategories).Doc(docID).Set(ctx, category); err != nil {
		return r.eb.Wrap(err, "failed to put category",
			goerr.TV(errutil.CategoryIDKey, category.ID),
			goerr.T(errs.TagDatabase))
	}
	return nil
}

func (r *Firestore) CreatePost(ctx context.Context, p post.Post) (types.PostID, error) {
	if err := p.ID.Validate(); err != nil {
		return "", r.eb.Wrap(err, "invalid post ID", goerr.T(errs.TagValidation))
	}

	if _, err := r.db.Collection(CollectionPosts).Doc(p.ID.String()).Create(ctx, p); err != nil {
		msg := "Could not insert post into the database"
		if status.Code(err) == codes.AlreadyExists {
			msg = "Post already exists"
		}
		return "", r.eb.Wrap(
			errs.NewAPIError(errs.CodeInsertFailed, msg, http.StatusInternalServerError),
			"failed to create post",
			goerr.TV(errutil.PostIDKey, p.ID),
			goerr.V("cause", err.Error()),
			goerr.T(errs.TagDatabase))
	}
	return p.ID, nil
}

func (r *Firestore) GetPost(ctx context.Context, id types.PostID) (*post.Post, error) {
	doc, err := r.db.Collection(CollectionPosts).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, r.eb.Wrap(err, "failed to get post",
			goerr.TV(errutil.PostIDKey, id),
			goerr.T(errs.TagDatabase))
	}

	var p post.Post
	if err := doc.DataTo(&p); err != nil {
		return nil, r.eb.Wrap(err, "failed to decode post",
			goerr.TV(errutil.PostIDKey, id),
			goerr.T(errs.TagDatabase))
	}
	return &p, nil
}

// ListPosts requires the (Status, CreatedAt desc) composite index created by the migrate command.
func (r *Firestore) ListPosts(ctx context.Context, postStatus types.PostStatus, limit int) ([]*post.Post, error) {
	q := r.db.Collection(CollectionPosts).
		Where("Status", "==", postStatus).
		OrderBy("CreatedAt", firestore.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var posts []*post.Post
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, r.eb.Wrap(err, "failed to list posts",
				goerr.TV(errutil.StatusKey, postStatus.String()),
				goerr.TV(errutil.LimitKey, limit),
				goerr.T(errs.TagDatabase))
		}

		var p post.Post
		if err := doc.DataTo(&p); err != nil {
			return nil, r.eb.Wrap(err, "failed to decode post",
				goerr.V("doc_id", doc.Ref.ID),
				goerr.T(errs.TagDatabase))
		}
		posts = append(posts, &p)
	}
	return posts, nil
}

func (r *Firestore) PutAuthor(ctx context.Context, a author.Author) error {
	if err := a.Role.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid author", goerr.TV(errutil.AuthorIDKey, a.ID), goerr.T(errs.TagValidation))
	}

	docID := strconv.FormatInt(int64(a.ID), 10)
	if _, err := r.db.Collection(CollectionAuthors).Doc(docID).Set(ctx, a); err != nil {
		return r.eb.Wrap(err, "failed to put author",
			goerr.TV(errutil.AuthorIDKey, a.ID),
			goerr.T(errs.TagDatabase))
	}
	return nil
}

// ListAuthors requires the (Role, ID) composite index created by the migrate command.
func (r *Firestore) ListAuthors(ctx context.Context, roles []types.Role) ([]*author.Author, error) {
	if len(roles) == 0 {
		return nil, nil
	}

	iter := r.db.Collection(CollectionAuthors).
		Where("Role", "in", roles).
		OrderBy("ID", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var authors []*author.Author
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, r.eb.Wrap(err, "failed to list authors",
				goerr.V("roles", roles),
				goerr.T(errs.TagDatabase))
		}

		var a author.Author
		if err := doc.DataTo(&a); err != nil {
			return nil, r.eb.Wrap(err, "failed to decode author",
				goerr.V("doc_id", doc.Ref.ID),
				goerr.T(errs.TagDatabase))
		}
		authors = append(authors, &a)
	}
	return authors, nil
}
