package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jagankumaroffl/todo-task-management/internal/service"
)

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := service.NewUserService(users)

	u, err := svc.Register(context.Background(), "  Alice@Example.com ", " Alice ", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "Alice", u.Name)
	assert.NotEqual(t, "s3cret", u.PasswordHash)

	got, err := svc.ValidateCredentials(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = svc.ValidateCredentials(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.ValidateCredentials(context.Background(), "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestRegisterRequiresEmailAndPassword(t *testing.T) {
	svc := service.NewUserService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), "", "x", "pw")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Register(context.Background(), "a@b.io", "x", "")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}
