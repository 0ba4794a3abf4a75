package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"flash_sale_back_end/internal/models"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// OrderStore persiste les commandes confirmées. Une commande est écrite une fois puis jamais relue.
type OrderStore interface {
	Put(ctx context.Context, order *models.Order) error
	Ping(ctx context.Context) error
}

var ErrDuplicateOrder = errors.New("commande déjà enregistrée")

// =============================================
// SCYLLA DB
// =============================================

// ScyllaOrderStore écrit les commandes dans une table Scylla avec un TTL natif
type ScyllaOrderStore struct {
	manager *ScyllaManager
	table   string
	ttl     time.Duration
}

var _ OrderStore = (*ScyllaOrderStore)(nil)

func NewScyllaOrderStore(manager *ScyllaManager, table string, ttl time.Duration) *ScyllaOrderStore {
	return &ScyllaOrderStore{manager: manager, table: table, ttl: ttl}
}

func createOrdersTableCQL(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		order_id uuid PRIMARY KEY,
		created_at timestamp,
		customer_email text,
		items text,
		total_amount double,
		status text,
		expiration_time bigint,
		request_timestamp text
	)`, table)
}

// insertOrderCQL : une seule écriture inconditionnelle, la ligne expire via le TTL
func insertOrderCQL(table string, ttl time.Duration) string {
	return fmt.Sprintf(`INSERT INTO %s (order_id, created_at, customer_email, items, total_amount, status, expiration_time, request_timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?) USING TTL %d`, table, int64(ttl.Seconds()))
}

// orderValues convertit une commande en valeurs de bind (items sérialisés en JSON)
func orderValues(order *models.Order) ([]any, error) {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("sérialisation des items: %w", err)
	}

	return []any{
		gocql.UUID(order.OrderID),
		order.CreatedTime(),
		order.CustomerEmail,
		string(itemsJSON),
		order.TotalAmount,
		order.Status,
		order.ExpirationTime,
		order.Timestamp,
	}, nil
}

// EnsureSchema crée la table des commandes
func (s *ScyllaOrderStore) EnsureSchema(ctx context.Context) error {
	session, err := s.manager.Session()
	if err != nil {
		return err
	}
	if err := session.Query(createOrdersTableCQL(s.table)).WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("erreur création table %s: %w", s.table, err)
	}
	return nil
}

func (s *ScyllaOrderStore) Put(ctx context.Context, order *models.Order) error {
	values, err := orderValues(order)
	if err != nil {
		return err
	}

	session, err := s.manager.Session()
	if err != nil {
		return err
	}

	if err := session.Query(insertOrderCQL(s.table, s.ttl), values...).WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("erreur insertion commande %s: %w", order.OrderID, err)
	}
	return nil
}

func (s *ScyllaOrderStore) Ping(ctx context.Context) error {
	session, err := s.manager.Session()
	if err != nil {
		return err
	}
	return session.Query("SELECT now() FROM system.local").WithContext(ctx).Exec()
}

// =============================================
// MÉMOIRE (dev & tests)
// =============================================

type MemoryOrderStore struct {
	mu     sync.Mutex
	orders map[uuid.UUID]models.Order
}

var _ OrderStore = (*MemoryOrderStore)(nil)

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{orders: make(map[uuid.UUID]models.Order)}
}

func (m *MemoryOrderStore) Put(ctx context.Context, order *models.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.orders[order.OrderID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateOrder, order.OrderID)
	}

	stored := *order
	stored.Items = append([]models.LineItem(nil), order.Items...)
	m.orders[order.OrderID] = stored
	return nil
}

func (m *MemoryOrderStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Len retourne le nombre de commandes enregistrées
func (m *MemoryOrderStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

// Get sert uniquement aux tests et au debug
func (m *MemoryOrderStore) Get(id uuid.UUID) (models.Order, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	return o, ok
}
