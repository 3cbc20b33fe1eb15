package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, user_id, item_id, quantity, status, created_at, decided_at, decided_by`

// Create persiste un nuevo pedido (estado pending).
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, user_id, item_id, quantity, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.UserID, order.ItemID, order.Quantity, order.Status, order.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get order")
}

// GetByIDForUpdate obtiene el pedido y bloquea la fila (SELECT FOR UPDATE).
// Evita que dos decisiones concurrentes sobre el mismo pedido se intercalen.
func (r *OrderRepo) GetByIDForUpdate(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get order for update")
}

// List lista pedidos, filtro por estado exacto (vacío = todos), más recientes primero.
func (r *OrderRepo) List(status string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + ` FROM orders
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// ListByUser lista los pedidos de un usuario, filtro por estado, más recientes primero.
func (r *OrderRepo) ListByUser(userID, status string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + ` FROM orders
		WHERE user_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, userID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders by user: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// UpdateStatus persiste el nuevo estado y los campos de decisión.
func (r *OrderRepo) UpdateStatus(order *entity.Order) error {
	query := `
		UPDATE orders SET status = $2, decided_at = $3, decided_by = $4
		WHERE id = $1`
	decidedBy := (*string)(nil)
	if order.DecidedBy != "" {
		decidedBy = &order.DecidedBy
	}
	cmd, err := r.q.Exec(context.Background(), query,
		order.ID, order.Status, order.DecidedAt, decidedBy,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) scanOne(row pgx.Row, op string) (*entity.Order, error) {
	var o entity.Order
	var decidedBy *string
	err := row.Scan(&o.ID, &o.UserID, &o.ItemID, &o.Quantity, &o.Status, &o.CreatedAt, &o.DecidedAt, &decidedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if decidedBy != nil {
		o.DecidedBy = *decidedBy
	}
	return &o, nil
}

func (r *OrderRepo) scanMany(rows pgx.Rows) ([]*entity.Order, error) {
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		var decidedBy *string
		if err := rows.Scan(&o.ID, &o.UserID, &o.ItemID, &o.Quantity, &o.Status, &o.CreatedAt, &o.DecidedAt, &decidedBy); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if decidedBy != nil {
			o.DecidedBy = *decidedBy
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
