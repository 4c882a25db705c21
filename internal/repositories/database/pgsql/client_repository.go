package pgsql

import (
	"context"
	"strings"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/repair_shop_app/internal/core/ports/repositories"
	"github.com/SscSPs/repair_shop_app/internal/models"
	"github.com/SscSPs/repair_shop_app/internal/utils/mapping"
)

type PgxClientRepository struct {
	BaseRepository
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	var m models.Client
	err := r.db.QueryRow(ctx, `SELECT id, name, phone, created_at FROM clients WHERE id = $1`, clientID).
		Scan(&m.ClientID, &m.Name, &m.Phone, &m.CreatedAt)
	if err != nil {
		return nil, storeError("find client", err)
	}
	c := mapping.ToDomainClient(m)
	return &c, nil
}

func (r *PgxClientRepository) ListClients(ctx context.Context, search string) ([]domain.Client, error) {
	query := `SELECT id, name, phone, created_at FROM clients`
	var args []interface{}
	if s := strings.TrimSpace(search); s != "" {
		query += ` WHERE name ILIKE $1 ESCAPE '\' OR phone ILIKE $1 ESCAPE '\'`
		args = append(args, containsPattern(s))
	}
	query += ` ORDER BY name, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError("list clients", err)
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var m models.Client
		if err := rows.Scan(&m.ClientID, &m.Name, &m.Phone, &m.CreatedAt); err != nil {
			return nil, storeError("scan client row", err)
		}
		clients = append(clients, mapping.ToDomainClient(m))
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate client rows", err)
	}
	return clients, nil
}

// FindOrCreateClientByPhone upserts on the unique phone so concurrent intakes
// for one phone converge on a single row. The latest name wins.
func (r *PgxClientRepository) FindOrCreateClientByPhone(ctx context.Context, name, phone string) (*domain.Client, error) {
	query := `
		INSERT INTO clients (name, phone, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (phone) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, phone, created_at;
	`
	var m models.Client
	if err := r.db.QueryRow(ctx, query, name, phone).Scan(&m.ClientID, &m.Name, &m.Phone, &m.CreatedAt); err != nil {
		return nil, storeError("upsert client", err)
	}
	c := mapping.ToDomainClient(m)
	return &c, nil
}
