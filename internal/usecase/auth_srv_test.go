package usecase

import (
	"context"
	"testing"
	"time"

	"railbook/internal/data/entity"
	"railbook/internal/dto/request"
	"railbook/pkg/token"
	"railbook/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthService() AuthService {
	config := &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "test-jwt-secret",
			ExpiryHours: 24,
		},
	}
	return NewAuthService(newTestRepository(), config, zap.NewNop())
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &request.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@x.com",
		Password: "pw12345678",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "Jane", resp.User.Name)
	assert.Equal(t, "jane@x.com", resp.User.Email)
	assert.Equal(t, entity.RoleUser, resp.User.Role)
	require.NotEmpty(t, resp.Token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), resp.ExpiresAt, 5*time.Second)

	// the issued token verifies immediately and carries the identity
	claims, err := token.Verify([]byte("test-jwt-secret"), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "jane@x.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService()
	ctx := context.Background()

	req := &request.RegisterRequest{Name: "Jane", Email: "jane@x.com", Password: "pw12345678"}

	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestAuthService_Register_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService()
	ctx := context.Background()

	tests := []struct {
		name string
		req  request.RegisterRequest
	}{
		{name: "missing name", req: request.RegisterRequest{Email: "jane@x.com", Password: "pw12345678"}},
		{name: "bad email", req: request.RegisterRequest{Name: "Jane", Email: "not-an-email", Password: "pw12345678"}},
		{name: "short password", req: request.RegisterRequest{Name: "Jane", Email: "jane@x.com", Password: "pw"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.Register(ctx, &tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{
		Name: "Jane", Email: "jane@x.com", Password: "pw12345678",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &request.LoginRequest{Email: "jane@x.com", Password: "pw12345678"})
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{
		Name: "Jane", Email: "jane@x.com", Password: "pw12345678",
	})
	require.NoError(t, err)

	// wrong password and unknown email fail identically
	_, wrongPassword := svc.Login(ctx, &request.LoginRequest{Email: "jane@x.com", Password: "wrong"})
	require.Error(t, wrongPassword)
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)

	_, unknownEmail := svc.Login(ctx, &request.LoginRequest{Email: "nobody@x.com", Password: "pw12345678"})
	require.Error(t, unknownEmail)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)

	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_IssueToken_ExpiryEnforced(t *testing.T) {
	t.Parallel()

	config := &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "test-jwt-secret",
			ExpiryHours: -1, // already expired when issued
		},
	}
	svc := NewAuthService(newTestRepository(), config, zap.NewNop())

	user := &entity.User{
		ID:    utils.GenerateUUID(),
		Name:  "Jane",
		Email: "jane@x.com",
		Role:  entity.RoleUser,
	}

	signed, _, err := svc.IssueToken(user)
	require.NoError(t, err)

	_, err = token.Verify([]byte("test-jwt-secret"), signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}
