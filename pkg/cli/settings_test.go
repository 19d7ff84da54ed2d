package cli_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/alertpost/pkg/cli"
	"github.com/secmon-lab/alertpost/pkg/domain/model/setting"
	"github.com/secmon-lab/alertpost/pkg/domain/types"
)

func ptr(s string) *string { return &s }

func TestMergeSettingsInput(t *testing.T) {
	current := &setting.Config{Username: "user", Password: "pass", AuthorID: 3}

	t.Run("keeps values that are not given", func(t *testing.T) {
		input, err := cli.MergeSettingsInput(current, nil, ptr("new-pass"), nil)
		gt.NoError(t, err)
		gt.Equal(t, input, map[string]string{
			"username": "user",
			"password": "new-pass",
			"authorid": "3",
		})
	})

	t.Run("author id is replaced", func(t *testing.T) {
		input, err := cli.MergeSettingsInput(current, nil, nil, ptr("-5"))
		gt.NoError(t, err)
		gt.Equal(t, setting.Sanitize(input).AuthorID, types.AuthorID(5))
	})

	t.Run("author id must be an integer", func(t *testing.T) {
		_, err := cli.MergeSettingsInput(current, nil, nil, ptr("admin"))
		gt.Error(t, err)
	})

	t.Run("nothing to update", func(t *testing.T) {
		_, err := cli.MergeSettingsInput(current, nil, nil, nil)
		gt.Error(t, err)
	})
}

func TestDisplaySettings(t *testing.T) {
	cfg := &setting.Config{
		Username:  "everbridge",
		Password:  "s3cret",
		AuthorID:  2,
		UpdatedAt: time.Now().Add(-time.Hour),
	}

	t.Run("password is masked", func(t *testing.T) {
		var buf bytes.Buffer
		cli.DisplaySettings(&buf, cfg, false)
		gt.S(t, buf.String()).Contains("everbridge")
		gt.S(t, buf.String()).Contains("******")
		gt.S(t, buf.String()).NotContains("s3cret")
		gt.S(t, buf.String()).Contains("1 hour ago")
	})

	t.Run("password is shown on request", func(t *testing.T) {
		var buf bytes.Buffer
		cli.DisplaySettings(&buf, cfg, true)
		gt.S(t, buf.String()).Contains("s3cret")
	})

	t.Run("default settings", func(t *testing.T) {
		def := setting.Default()
		var buf bytes.Buffer
		cli.DisplaySettings(&buf, &def, false)
		gt.S(t, buf.String()).Contains("(not set)")
		gt.S(t, buf.String()).Contains("never")
	})
}
