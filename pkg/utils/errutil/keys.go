package errutil

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/alertpost/pkg/domain/types"
)

var (
	// IDs
	PostIDKey     = goerr.NewTypedKey[types.PostID]("post_id")
	AuthorIDKey   = goerr.NewTypedKey[types.AuthorID]("author_id")
	CategoryIDKey = goerr.NewTypedKey[types.CategoryID]("category_id")
	RequestIDKey  = goerr.NewTypedKey[string]("request_id")

	// Values
	CategoryNameKey = goerr.NewTypedKey[string]("category_name")
	OptionNameKey   = goerr.NewTypedKey[string]("option_name")
	StatusKey       = goerr.NewTypedKey[string]("status")
	RepositoryKey   = goerr.NewTypedKey[string]("repository")
	CollectionKey   = goerr.NewTypedKey[string]("collection")
	LimitKey        = goerr.NewTypedKey[int]("limit")
)
