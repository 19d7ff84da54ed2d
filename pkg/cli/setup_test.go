package cli_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/alertpost/pkg/cli"
	"github.com/secmon-lab/alertpost/pkg/domain/types"
)

func TestParseCategory(t *testing.T) {
	category, err := cli.ParseCategory("alertsu:12")
	gt.NoError(t, err)
	gt.Equal(t, category.Name, "alertsu")
	gt.Equal(t, category.ID, types.CategoryID(12))

	for _, input := range []string{"alertsu", ":12", "alert:0", "alert:x", "alert:-1"} {
		t.Run(input, func(t *testing.T) {
			_, err := cli.ParseCategory(input)
			gt.Error(t, err)
		})
	}
}

func TestBuildSetupInput(t *testing.T) {
	t.Run("categories and author", func(t *testing.T) {
		categories, authors, err := cli.BuildSetupInput([]string{"alertsu:2", "alert:3"}, 7, "Comms", "editor")
		gt.NoError(t, err)
		gt.A(t, categories).Length(2)
		gt.A(t, authors).Length(1)
		gt.Equal(t, authors[0].ID, types.AuthorID(7))
		gt.Equal(t, authors[0].Role, types.RoleEditor)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, _, err := cli.BuildSetupInput(nil, 7, "Comms", "owner")
		gt.Error(t, err)
	})

	t.Run("nothing to set up", func(t *testing.T) {
		_, _, err := cli.BuildSetupInput(nil, 0, "", "administrator")
		gt.Error(t, err)
	})
}
