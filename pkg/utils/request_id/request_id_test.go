package request_id_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/alertpost/pkg/utils/request_id"
)

func TestFromHeader(t *testing.T) {
	ctx := context.Background()

	t.Run("reuses a plain token", func(t *testing.T) {
		ctx, id := request_id.FromHeader(ctx, "abc-123")
		gt.Equal(t, id, "abc-123")
		gt.Equal(t, request_id.FromContext(ctx), "abc-123")
	})

	for _, value := range []string{"", "has space", "line\nbreak"} {
		t.Run("generates for "+value, func(t *testing.T) {
			ctx, id := request_id.FromHeader(ctx, value)
			_, err := uuid.Parse(id)
			gt.NoError(t, err)
			gt.Equal(t, request_id.FromContext(ctx), id)
		})
	}
}
