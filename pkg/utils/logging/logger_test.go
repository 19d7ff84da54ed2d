package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/alertpost/pkg/domain/model/setting"
	"github.com/secmon-lab/alertpost/pkg/utils/logging"
)

func TestLogger(t *testing.T) {
	t.Run("secret prefix is redacted", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON, false)
		logger.Info("hello",
			slog.String("secret_key", "xxx"),
			slog.String("normal_key", "aaa"),
		)

		gt.S(t, buf.String()).Contains("aaa").NotContains("xxx")
	})

	t.Run("stored password is redacted", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON, false)
		logger.Info("settings saved", slog.Any("config", setting.Config{
			Username: "everbridge",
			Password: "s3cr3t-pass",
			AuthorID: 7,
		}))

		gt.S(t, buf.String()).Contains("everbridge").NotContains("s3cr3t-pass")
	})

	t.Run("console format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf, slog.LevelDebug, logging.FormatConsole, true)
		logger.Debug("debug message", slog.String("normal_key", "aaa"))

		gt.S(t, buf.String()).Contains("debug message").Contains("aaa")
	})
}
