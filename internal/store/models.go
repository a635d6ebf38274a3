package store

import (
	"github.com/uptrace/bun"
)

// User is the account model. PasswordHash is never serialized.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	ID           int64  `bun:"id,pk,autoincrement" json:"id"`
	Email        string `bun:"email,notnull,unique" json:"email"`
	PasswordHash string `bun:"password_hash,notnull" json:"-"`
	Name         string `bun:"name,notnull" json:"name"`
	IsAdmin      bool   `bun:"is_admin,notnull,default:false" json:"is_admin"`
	IsActive     bool   `bun:"is_active,notnull" json:"is_active"`
}

// Task is the task model. CreatorID is set once at creation and never
// exposed as a mutable field. AssigneeID is nil while unassigned.
type Task struct {
	bun.BaseModel `bun:"table:tasks,alias:tsk"`

	ID          int64  `bun:"id,pk,autoincrement" json:"id"`
	Title       string `bun:"title,notnull" json:"title"`
	Description string `bun:"description,notnull" json:"description"`
	IsComplete  bool   `bun:"is_complete,notnull,default:false" json:"is_complete"`
	AssigneeID  *int64 `bun:"assignee_id" json:"assignee_id"`
	CreatorID   int64  `bun:"creator_id,notnull" json:"creator_id"`

	Assignee *User `bun:"rel:belongs-to,join:assignee_id=id" json:"assignee,omitempty"`
	Creator  *User `bun:"rel:belongs-to,join:creator_id=id" json:"-"`
}
