// Package policy holds the access rules for todos. All functions are pure:
// they decide from the acting user and the record alone, and are used as
// guards before every mutation and single-record read.
package policy

import (
	"github.com/google/uuid"

	"github.com/jagankumaroffl/todo-task-management/internal/domain"
)

// CanRead reports whether userID may see the todo: the owner or any shared
// member.
func CanRead(userID uuid.UUID, t domain.Todo) bool {
	return t.OwnerID == userID || t.IsSharedWith(userID)
}

// CanEdit reports whether userID may change the todo's fields. Shared
// members edit with the same rights as the owner.
func CanEdit(userID uuid.UUID, t domain.Todo) bool {
	return CanRead(userID, t)
}

// CanDelete reports whether userID may delete the todo. Sharing never
// grants delete rights.
func CanDelete(userID uuid.UUID, t domain.Todo) bool {
	return t.OwnerID == userID
}

// CanShare reports whether userID may grant others access. A shared member
// cannot re-share.
func CanShare(userID uuid.UUID, t domain.Todo) bool {
	return t.OwnerID == userID
}
