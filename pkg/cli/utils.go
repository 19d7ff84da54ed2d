package cli

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/alertpost/pkg/domain/model/post"
	"github.com/secmon-lab/alertpost/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, flag := range flags {
		result = append(result, flag...)
	}
	return result
}

// parseCategory parses "name:id" given to --category.
func parseCategory(s string) (post.Category, error) {
	name, id, ok := strings.Cut(s, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return post.Category{}, goerr.New("category must be name:id", goerr.V("category", s))
	}

	n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil || n <= 0 {
		return post.Category{}, goerr.New("category ID must be a positive integer", goerr.V("category", s))
	}

	return post.Category{ID: types.CategoryID(n), Name: name}, nil
}
