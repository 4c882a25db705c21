package repositories

import (
	"context"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error)
	ListClients(ctx context.Context, search string) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// FindOrCreateClientByPhone returns the client owning phone, creating it
	// with name when absent. Concurrent callers for one phone get the same row.
	FindOrCreateClientByPhone(ctx context.Context, name, phone string) (*domain.Client, error)
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
