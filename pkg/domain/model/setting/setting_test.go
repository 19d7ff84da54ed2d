package setting_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/alertpost/pkg/domain/model/setting"
	"github.com/secmon-lab/alertpost/pkg/domain/types"
)

func TestDefault(t *testing.T) {
	cfg := setting.Default()
	gt.Equal(t, cfg.Username, "")
	gt.Equal(t, cfg.Password, "")
	gt.Equal(t, cfg.AuthorID, types.AuthorID(1))
}

func TestSanitize(t *testing.T) {
	t.Run("author ID from string", func(t *testing.T) {
		cfg := setting.Sanitize(map[string]string{
			setting.FieldUsername: "everbridge",
			setting.FieldPassword: "pass",
			setting.FieldAuthorID: "7",
		})
		gt.Equal(t, cfg.AuthorID, types.AuthorID(7))
		gt.Equal(t, cfg.Username, "everbridge")
		gt.Equal(t, cfg.Password, "pass")
	})

	t.Run("negative author ID becomes positive", func(t *testing.T) {
		cfg := setting.Sanitize(map[string]string{setting.FieldAuthorID: "-4"})
		gt.Equal(t, cfg.AuthorID, types.AuthorID(4))
	})

	t.Run("invalid author ID becomes zero", func(t *testing.T) {
		cfg := setting.Sanitize(map[string]string{setting.FieldAuthorID: "admin"})
		gt.Equal(t, cfg.AuthorID, types.AuthorID(0))
	})

	t.Run("credentials are trimmed plain text", func(t *testing.T) {
		cfg := setting.Sanitize(map[string]string{
			setting.FieldUsername: "  <b>ever</b>bridge \n",
			setting.FieldPassword: "\tpa ss  ",
		})
		gt.Equal(t, cfg.Username, "everbridge")
		gt.Equal(t, cfg.Password, "pa ss")
	})

	t.Run("author ID never negative", func(t *testing.T) {
		cfg := setting.Sanitize(map[string]string{setting.FieldAuthorID: "-9223372036854775808"})
		gt.True(t, cfg.AuthorID >= 0)
	})

	t.Run("password with entity survives re-save", func(t *testing.T) {
		first := setting.Sanitize(map[string]string{setting.FieldPassword: "a&amp;b"})
		gt.Equal(t, first.Password, "a&amp;b")

		second := setting.Sanitize(map[string]string{setting.FieldPassword: first.Password})
		gt.Equal(t, second.Password, first.Password)
	})

	t.Run("missing fields", func(t *testing.T) {
		cfg := setting.Sanitize(map[string]string{})
		gt.Equal(t, cfg, setting.Config{})
	})
}

func TestConfigCredentials(t *testing.T) {
	cfg := setting.Config{Username: "u", Password: "p", AuthorID: 3}
	cred := cfg.Credentials()
	gt.Equal(t, cred.Username, "u")
	gt.Equal(t, cred.Password, "p")
}
