package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/alertpost/pkg/domain/interfaces"
	"github.com/secmon-lab/alertpost/pkg/domain/model/author"
	"github.com/secmon-lab/alertpost/pkg/domain/model/errs"
	"github.com/secmon-lab/alertpost/pkg/domain/model/post"
	"github.com/secmon-lab/alertpost/pkg/domain/model/setting"
	"github.com/secmon-lab/alertpost/pkg/domain/types"
	"github.com/secmon-lab/alertpost/pkg/repository/sqlite/migrations"
	"github.com/secmon-lab/alertpost/pkg/utils/errutil"

	_ "modernc.org/sqlite" // SQLite driver registration.
)

// SQLite stores everything in a single database file. It serves single node
// deployments that have no Firestore.
type SQLite struct {
	db *sql.DB
	eb *goerr.Builder
}

var _ interfaces.Repository = &SQLite{}

// New opens the database at dsn and applies pending migrations. ":memory:"
// gives a database that lives as long as the repository.
func New(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite", goerr.V("dsn", dsn))
	}
	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to set WAL mode", goerr.V("dsn", dsn))
	}

	if err := migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to migrate sqlite", goerr.V("dsn", dsn))
	}

	return &SQLite{
		db: db,
		eb: goerr.NewBuilder(goerr.TV(errutil.RepositoryKey, "sqlite")),
	}, nil
}

func (r *SQLite) Close() error {
	return r.db.Close()
}

func (r *SQLite) GetConfig(ctx context.Context) (*setting.Config, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM options WHERE name = ?`, setting.OptionName).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, r.eb.Wrap(err, "failed to get config",
			goerr.TV(errutil.OptionNameKey, setting.OptionName),
			goerr.T(errs.TagDatabase))
	}

	var cfg setting.Config
	if err := json.Unmarshal([]byte(value), &cfg); err != nil {
		return nil, r.eb.Wrap(err, "failed to decode config",
			goerr.TV(errutil.OptionNameKey, setting.OptionName),
			goerr.T(errs.TagDatabase))
	}
	return &cfg, nil
}

func (r *SQLite) PutConfig(ctx context.Context, cfg setting.Config) error {
	value, err := json.Marshal(cfg)
	if err != nil {
		return r.eb.Wrap(err, "failed to encode config", goerr.TV(errutil.OptionNameKey, setting.OptionName))
	}

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO options (name, value) VALUES (?, ?)
		 ON CONFLICT (name) DO UPDATE SET value = excluded.value`,
		setting.OptionName, string(value),
	); err != nil {
		return r.eb.Wrap(err, "failed to put config",
			goerr.TV(errutil.OptionNameKey, setting.OptionName),
			goerr.T(errs.TagDatabase))
	}
	return nil
}

func (r *SQLite) GetCategoryByName(ctx context.Context, name string) (*post.Category, error) {
	var category post.Category
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM categories WHERE name = ?`, name).
		Scan(&category.ID, &category.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, r.eb.Wrap(err, "failed to get category",
			goerr.TV(errutil.CategoryNameKey, name),
			goerr.T(errs.TagDatabase))
	}
	return &category, nil
}

// PutCategory replaces any category having the same ID or name.
func (r *SQLite) PutCategory(ctx context.Context, category post.Category) error {
	if category.Name == "" {
		return r.eb.New("category name is required",
			goerr.TV(errutil.CategoryIDKey, category.ID),
			goerr.T(errs.TagValidation))
	}

	if _, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO categories (id, name) VALUES (?, ?)`,
		category.ID, category.Name,
	); err != nil {
		return r.eb.Wrap(err, "failed to put category",
			goerr.TV(errutil.CategoryIDKey, category.ID),
			goerr.T(errs.TagDatabase))
	}
	return nil
}

func (r *SQLite) CreatePost(ctx context.Context, p post.Post) (types.PostID, error) {
	if err := p.ID.Validate(); err != nil {
		return "", r.eb.Wrap(err, "invalid post ID", goerr.T(errs.TagValidation))
	}

	categories, err := json.Marshal(nonNil(p.Categories))
	if err != nil {
		return "", r.eb.Wrap(err, "failed to encode categories", goerr.TV(errutil.PostIDKey, p.ID))
	}
	tags, err := json.Marshal(nonNil(p.Tags))
	if err != nil {
		return "", r.eb.Wrap(err, "failed to encode tags", goerr.TV(errutil.PostIDKey, p.ID))
	}

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (id, title, content, author_id, status, categories, tags, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID.String(), p.Title, p.Content, p.AuthorID, p.Status.String(),
		string(categories), string(tags), p.CreatedAt.UnixNano(),
	); err != nil {
		msg := "Could not insert post into the database"
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
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

const postColumns = `id, title, content, author_id, status, categories, tags, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(row scanner) (*post.Post, error) {
	var (
		p          post.Post
		categories string
		tags       string
		createdAt  int64
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.Status, &categories, &tags, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(categories), &p.Categories); err != nil {
		return nil, goerr.Wrap(err, "failed to decode categories", goerr.TV(errutil.PostIDKey, p.ID))
	}
	if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
		return nil, goerr.Wrap(err, "failed to decode tags", goerr.TV(errutil.PostIDKey, p.ID))
	}
	p.CreatedAt = time.Unix(0, createdAt).UTC()
	return &p, nil
}

func (r *SQLite) GetPost(ctx context.Context, id types.PostID) (*post.Post, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = ?`, id.String())
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, r.eb.Wrap(err, "failed to get post",
			goerr.TV(errutil.PostIDKey, id),
			goerr.T(errs.TagDatabase))
	}
	return p, nil
}

func (r *SQLite) ListPosts(ctx context.Context, status types.PostStatus, limit int) ([]*post.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE status = ? ORDER BY created_at DESC, id DESC`
	args := []any{status.String()}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.eb.Wrap(err, "failed to list posts",
			goerr.TV(errutil.StatusKey, status.String()),
			goerr.TV(errutil.LimitKey, limit),
			goerr.T(errs.TagDatabase))
	}
	defer func() { _ = rows.Close() }()

	var posts []*post.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, r.eb.Wrap(err, "failed to scan post", goerr.T(errs.TagDatabase))
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, r.eb.Wrap(err, "failed to iterate posts", goerr.T(errs.TagDatabase))
	}
	return posts, nil
}

func (r *SQLite) PutAuthor(ctx context.Context, a author.Author) error {
	if err := a.Role.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid author", goerr.TV(errutil.AuthorIDKey, a.ID), goerr.T(errs.TagValidation))
	}

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO authors (id, display_name, role) VALUES (?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET display_name = excluded.display_name, role = excluded.role`,
		a.ID, a.DisplayName, string(a.Role),
	); err != nil {
		return r.eb.Wrap(err, "failed to put author",
			goerr.TV(errutil.AuthorIDKey, a.ID),
			goerr.T(errs.TagDatabase))
	}
	return nil
}

func (r *SQLite) ListAuthors(ctx context.Context, roles []types.Role) ([]*author.Author, error) {
	if len(roles) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(roles))
	args := make([]any, len(roles))
	for i, role := range roles {
		placeholders[i] = "?"
		args[i] = string(role)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, display_name, role FROM authors WHERE role IN (`+strings.Join(placeholders, ", ")+`) ORDER BY id`,
		args...,
	)
	if err != nil {
		return nil, r.eb.Wrap(err, "failed to list authors", goerr.T(errs.TagDatabase))
	}
	defer func() { _ = rows.Close() }()

	var authors []*author.Author
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.DisplayName, &a.Role); err != nil {
			return nil, r.eb.Wrap(err, "failed to scan author", goerr.T(errs.TagDatabase))
		}
		authors = append(authors, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, r.eb.Wrap(err, "failed to iterate authors", goerr.T(errs.TagDatabase))
	}
	return authors, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
