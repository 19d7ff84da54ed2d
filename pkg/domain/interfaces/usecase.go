package interfaces

import (
	"context"

	"github.com/secmon-lab/alertpost/pkg/domain/model/auth"
	"github.com/secmon-lab/alertpost/pkg/domain/model/author"
	"github.com/secmon-lab/alertpost/pkg/domain/model/post"
	"github.com/secmon-lab/alertpost/pkg/domain/model/setting"
)

type NotificationUsecases interface {
	// VerifyCredentials checks the sender and returns the configuration read for this request.
	VerifyCredentials(ctx context.Context, cred auth.Credentials) (*setting.Config, error)
	HandleNotification(ctx context.Context, cfg setting.Config, n post.Notification) (*post.Post, error)
}

type SettingUsecases interface {
	GetSettings(ctx context.Context) (*setting.Config, error)
	SaveSettings(ctx context.Context, input map[string]string) (*setting.Config, error)
	ListEligibleAuthors(ctx context.Context) ([]*author.Author, error)
	ListRecentAlerts(ctx context.Context, limit int) ([]*post.Post, error)
}
