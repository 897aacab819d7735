package user

import "context"

// UserRepository defines data access methods for identity rows. The
// attendance and leave ledgers hold non-owning user_id references into
// this collaborator.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)

	// ListIDsByRole returns the IDs of every user holding the given role.
	// Used by the bulk leave-balance reset, which targets EMPLOYEE users only.
	ListIDsByRole(ctx context.Context, role Role) ([]string, error)
}
