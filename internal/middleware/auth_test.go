package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yatube-lab/backend/internal/middleware"
	"github.com/yatube-lab/backend/internal/model"
	"github.com/yatube-lab/backend/internal/repository"
	"github.com/yatube-lab/backend/pkg/authenticator"
	"github.com/yatube-lab/backend/pkg/errorx"
	"github.com/yatube-lab/backend/pkg/logger"
	"github.com/yatube-lab/backend/pkg/testutil"
	"github.com/yatube-lab/backend/pkg/xcontext"
)

func requestContext(req *http.Request) context.Context {
	ctx := xcontext.WithConfigs(context.Background(), testutil.MockConfigs())
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	return xcontext.WithHTTPRequest(ctx, req)
}

func accessToken(t *testing.T, secret string, expiration time.Duration) string {
	engine := authenticator.NewTokenEngine[model.AccessToken](secret, expiration)
	token, err := engine.Generate(testutil.User1.ID, model.AccessToken{
		ID:       testutil.User1.ID,
		Username: testutil.User1.Username,
	})
	require.NoError(t, err)
	return token
}

func TestAuthVerifier_Required(t *testing.T) {
	cfg := testutil.MockConfigs()
	verify := middleware.NewAuthVerifier().WithAccessToken().Middleware()

	req := httptest.NewRequest(http.MethodGet, "/getFollowIndex", nil)
	_, err := verify(requestContext(req))
	require.ErrorIs(t, err, errorx.New(errorx.Unauthenticated, ""))

	req = httptest.NewRequest(http.MethodGet, "/getFollowIndex", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, cfg.Auth.TokenSecret, time.Minute))
	ctx, err := verify(requestContext(req))
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, xcontext.RequestUserID(ctx))

	req = httptest.NewRequest(http.MethodGet, "/getFollowIndex", nil)
	req.AddCookie(&http.Cookie{
		Name:  cfg.Auth.AccessToken.Name,
		Value: accessToken(t, cfg.Auth.TokenSecret, time.Minute),
	})
	ctx, err = verify(requestContext(req))
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, xcontext.RequestUserID(ctx))

	req = httptest.NewRequest(http.MethodGet, "/getFollowIndex", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, "other-secret", time.Minute))
	_, err = verify(requestContext(req))
	require.ErrorIs(t, err, errorx.New(errorx.Unauthenticated, ""))

	req = httptest.NewRequest(http.MethodGet, "/getFollowIndex", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, cfg.Auth.TokenSecret, -time.Minute))
	_, err = verify(requestContext(req))
	require.ErrorIs(t, err, errorx.New(errorx.Unauthenticated, ""))
}

func TestAuthVerifier_Optional(t *testing.T) {
	verify := middleware.NewAuthVerifier().WithAccessToken().WithOptional().Middleware()

	req := httptest.NewRequest(http.MethodGet, "/getProfile", nil)
	ctx, err := verify(requestContext(req))
	require.NoError(t, err)
	require.Empty(t, xcontext.RequestUserID(ctx))

	req = httptest.NewRequest(http.MethodGet, "/getProfile", nil)
	req.Header.Set("Authorization", "Bearer broken")
	_, err = verify(requestContext(req))
	require.ErrorIs(t, err, errorx.New(errorx.Unauthenticated, ""))
}

func TestOnlyAdmin(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	onlyAdmin := middleware.NewOnlyAdmin(repository.NewUserRepository()).Middleware()

	_, err := onlyAdmin(xcontext.WithRequestUserID(ctx, testutil.User1.ID))
	require.ErrorIs(t, err, errorx.New(errorx.PermissionDenied, ""))

	_, err = onlyAdmin(xcontext.WithRequestUserID(ctx, testutil.User3.ID))
	require.NoError(t, err)
}
