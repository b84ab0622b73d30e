package reconcile

import "context"

// Adapter defines how one identifier category is fetched and compared.
// Each feature (dcim, ipam) provides adapters for the fields it owns.
type Adapter interface {
	// Name returns the category name used in errors and logs (e.g., "device", "ip").
	Name() string

	// Kind returns the identifying field compared by this adapter.
	Kind() IdentifierKind

	// Fetch returns the complete remote collection for this category.
	Fetch(ctx context.Context) ([]Record, error)

	// Select returns the identifying field of a record.
	Select(rec Record) (string, bool)
}

// Mutator applies planned actions to the remote system.
type Mutator interface {
	// Delete removes a single record.
	Delete(ctx context.Context, rec Record) error

	// Rename sets a new name on a record.
	Rename(ctx context.Context, rec Record, newName string) error
}

// BatchDeleter is implemented by mutators that can delete many records in one request.
type BatchDeleter interface {
	DeleteBatch(ctx context.Context, recs []Record) error
}

// Recorder receives every attempted action together with its outcome.
type Recorder interface {
	RecordAction(ctx context.Context, action Action, err error) error
}
