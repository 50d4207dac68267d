package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the
	// function use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so all operations inside one Execute call share a connection.
type RepositoryFactory interface {
	// NewListingRepository returns a ListingRepository bound to the current transaction.
	NewListingRepository() ListingRepository

	// NewBusinessRepository returns a BusinessRepository bound to the current transaction.
	NewBusinessRepository() BusinessRepository
}
