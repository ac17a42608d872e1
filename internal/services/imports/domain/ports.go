package domain

import "context"

// PreviewPort runs the inference pipeline over one upload or pasted block
type PreviewPort interface {
	Preview(ctx context.Context, in PreviewInput) (ReviewOutput, error)
}

// CommitPort persists reviewer-confirmed households atomically: either the
// whole batch lands or none of it does
type CommitPort interface {
	Commit(ctx context.Context, in CommitInput) (CommitReceipt, error)
}

// ExistingLabels supplies the stored family labels the preview run
// reconciles new candidates against; owned by the families module
type ExistingLabels interface {
	Labels(ctx context.Context) ([]string, error)
}

// FamilyWrite is one household row to persist
type FamilyWrite struct {
	ID   string
	Name string
}

// PersonWrite is one member row to persist under a family
type PersonWrite struct {
	ID             string
	FamilyID       string
	FirstName      string
	LastName       string
	Email          string
	Mobile         string
	IsMainContact1 bool
	IsMainContact2 bool
}

// StorageRepo is the persistence surface the committer binds inside a
// transaction
type StorageRepo interface {
	InsertFamily(ctx context.Context, f FamilyWrite) error
	InsertPerson(ctx context.Context, p PersonWrite) error
}
