package identity

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequire(t *testing.T) {
	_, err := Require(context.Background())
	assert.ErrorIs(t, err, ErrMissingIdentity)

	userID, err := Require(WithUserID(context.Background(), 42))
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

type whoAmIOutput struct {
	Body struct {
		UserID int64 `json:"userID"`
	}
}

func TestMiddleware(t *testing.T) {
	_, api := humatest.New(t)
	api.UseMiddleware(Middleware(7))
	huma.Register(api, huma.Operation{
		OperationID: "whoami",
		Method:      http.MethodGet,
		Path:        "/whoami",
	}, func(ctx context.Context, _ *struct{}) (*whoAmIOutput, error) {
		out := &whoAmIOutput{}
		userID, err := Require(ctx)
		if err != nil {
			return nil, err
		}
		out.Body.UserID = userID
		return out, nil
	})

	resp := api.Get("/whoami")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"userID":7`)
}
