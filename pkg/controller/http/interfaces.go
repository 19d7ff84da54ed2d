package http

import "github.com/secmon-lab/alertpost/pkg/domain/interfaces"

type UseCase interface {
	interfaces.NotificationUsecases
	interfaces.SettingUsecases
}
