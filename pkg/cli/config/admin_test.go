package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/alertpost/pkg/cli/config"
)

func TestAdmin_Configure(t *testing.T) {
	t.Run("disabled when nothing is set", func(t *testing.T) {
		cred, err := config.NewAdminForTest("", "").Configure()
		gt.NoError(t, err)
		gt.Nil(t, cred)
	})

	t.Run("both values are required", func(t *testing.T) {
		_, err := config.NewAdminForTest("admin", "").Configure()
		gt.Error(t, err)

		_, err = config.NewAdminForTest("", "secret").Configure()
		gt.Error(t, err)
	})

	t.Run("returns credentials", func(t *testing.T) {
		cred, err := config.NewAdminForTest("admin", "secret").Configure()
		gt.NoError(t, err)
		gt.NotNil(t, cred)
		gt.Equal(t, cred.Username, "admin")
		gt.Equal(t, cred.Password, "secret")
	})
}
