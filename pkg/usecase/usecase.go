package usecase

import (
	"github.com/secmon-lab/alertpost/pkg/domain/interfaces"
	"github.com/secmon-lab/alertpost/pkg/domain/model/post"
)

const defaultRecentLimit = 10

type UseCases struct {
	repository interfaces.Repository

	// configs
	categoryNames []string
	recentLimit   int
}

var _ interfaces.NotificationUsecases = &UseCases{}
var _ interfaces.SettingUsecases = &UseCases{}

type Option func(*UseCases)

func WithRepository(repository interfaces.Repository) Option {
	return func(u *UseCases) {
		u.repository = repository
	}
}

// WithCategoryNames overrides the names of categories alert posts belong to.
func WithCategoryNames(names []string) Option {
	return func(u *UseCases) {
		u.categoryNames = names
	}
}

func New(opts ...Option) *UseCases {
	uc := &UseCases{
		categoryNames: post.AlertCategoryNames(),
		recentLimit:   defaultRecentLimit,
	}
	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
