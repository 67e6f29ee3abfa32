package policy_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jagankumaroffl/todo-task-management/internal/domain"
	"github.com/jagankumaroffl/todo-task-management/internal/policy"
)

func TestPolicyRights(t *testing.T) {
	owner := uuid.New()
	member := uuid.New()
	stranger := uuid.New()

	todo := domain.Todo{
		ID:         uuid.New(),
		OwnerID:    owner,
		SharedWith: []uuid.UUID{member},
	}

	tests := []struct {
		name      string
		user      uuid.UUID
		canRead   bool
		canEdit   bool
		canDelete bool
		canShare  bool
	}{
		{"owner", owner, true, true, true, true},
		{"shared member", member, true, true, false, false},
		{"stranger", stranger, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.canRead, policy.CanRead(tt.user, todo))
			assert.Equal(t, tt.canEdit, policy.CanEdit(tt.user, todo))
			assert.Equal(t, tt.canDelete, policy.CanDelete(tt.user, todo))
			assert.Equal(t, tt.canShare, policy.CanShare(tt.user, todo))
		})
	}
}

func TestPolicyUnsharedTodo(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	todo := domain.Todo{ID: uuid.New(), OwnerID: owner}

	assert.True(t, policy.CanRead(owner, todo))
	assert.False(t, policy.CanRead(other, todo))
	assert.False(t, policy.CanEdit(other, todo))
}
