package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type PostID string

func (x PostID) String() string {
	return string(x)
}

func NewPostID() PostID {
	return PostID(uuid.New().String())
}

func (x PostID) Validate() error {
	if x == EmptyPostID {
		return goerr.New("empty post ID")
	}
	if _, err := uuid.Parse(string(x)); err != nil {
		return goerr.Wrap(err, "invalid post ID format", goerr.V("id", x))
	}
	return nil
}

const (
	EmptyPostID PostID = ""
)

type PostStatus string

const (
	PostStatusPublish PostStatus = "publish"
	PostStatusDraft   PostStatus = "draft"
)

func (x PostStatus) String() string {
	return string(x)
}

// CategoryID identifies a category in the host. CategoryNotFound is used for
// a category that could not be resolved by name.
type CategoryID int64

const (
	CategoryNotFound CategoryID = 0
)

// AuthorID identifies a principal in the host that owns created posts.
type AuthorID int64

const (
	DefaultAuthorID AuthorID = 1
)

type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleEditor        Role = "editor"
	RoleAuthor        Role = "author"
)

func (x Role) Validate() error {
	switch x {
	case RoleAdministrator, RoleEditor, RoleAuthor:
		return nil
	default:
		return goerr.New("invalid role", goerr.V("role", x))
	}
}
