package orders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/orders"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un memStore compartido y un fakeTxRunner que restaura el
// estado si la función transaccional devuelve error, igual que un ROLLBACK.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	orders    map[string]entity.Order
	items     map[string]entity.StockItem
	movements []entity.StockMovement
}

func newMemStore() *memStore {
	return &memStore{
		orders: make(map[string]entity.Order),
		items:  make(map[string]entity.StockItem),
	}
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for k, v := range s.orders {
		cp.orders[k] = v
	}
	for k, v := range s.items {
		cp.items[k] = v
	}
	cp.movements = append(cp.movements, s.movements...)
	return cp
}

func (s *memStore) restore(from *memStore) {
	s.orders = from.orders
	s.items = from.items
	s.movements = from.movements
}

type fakeOrderRepo struct{ s *memStore }

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	r.s.orders[o.ID] = *o
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *fakeOrderRepo) GetByIDForUpdate(id string) (*entity.Order, error) {
	return r.GetByID(id)
}

func (r *fakeOrderRepo) List(status string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for id := range r.s.orders {
		o := r.s.orders[id]
		if status == "" || o.Status == status {
			out = append(out, &o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByUser(userID, status string, limit, offset int) ([]*entity.Order, error) {
	all, _ := r.List(status, limit, offset)
	var out []*entity.Order
	for _, o := range all {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(o *entity.Order) error {
	if _, ok := r.s.orders[o.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.orders[o.ID] = *o
	return nil
}

type fakeItemRepo struct{ s *memStore }

func (r *fakeItemRepo) Create(it *entity.StockItem) error {
	r.s.items[it.ID] = *it
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.StockItem, error) {
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *fakeItemRepo) GetByIDForUpdate(id string) (*entity.StockItem, error) {
	return r.GetByID(id)
}

func (r *fakeItemRepo) List(category string, limit, offset int) ([]*entity.StockItem, error) {
	var out []*entity.StockItem
	for id := range r.s.items {
		it := r.s.items[id]
		if category == "" || it.Category == category {
			out = append(out, &it)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Update(it *entity.StockItem) error {
	r.s.items[it.ID] = *it
	return nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.s.items, id)
	return nil
}

func (r *fakeItemRepo) GetQuantity(id string) (int, error) {
	it, ok := r.s.items[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return it.Quantity, nil
}

func (r *fakeItemRepo) UpdateQuantity(id string, quantity int) error {
	it, ok := r.s.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	if quantity < 0 {
		return domain.ErrInsufficientStock
	}
	it.Quantity = quantity
	r.s.items[id] = it
	return nil
}

type fakeMovRepo struct{ s *memStore }

func (r *fakeMovRepo) Create(m *entity.StockMovement) error {
	r.s.movements = append(r.s.movements, *m)
	return nil
}

func (r *fakeMovRepo) ListByItem(itemID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := range r.s.movements {
		if r.s.movements[i].ItemID == itemID {
			m := r.s.movements[i]
			out = append(out, &m)
		}
	}
	return out, nil
}

func (r *fakeMovRepo) ListByOrder(orderID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := range r.s.movements {
		if r.s.movements[i].OrderID != nil && *r.s.movements[i].OrderID == orderID {
			m := r.s.movements[i]
			out = append(out, &m)
		}
	}
	return out, nil
}

type fakeTxRunner struct{ s *memStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	orderRepo repository.OrderRepository,
	itemRepo repository.StockItemRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	before := t.s.snapshot()
	if err := fn(&fakeOrderRepo{s: t.s}, &fakeItemRepo{s: t.s}, &fakeMovRepo{s: t.s}); err != nil {
		t.s.restore(before)
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	adminID    = "admin-1"
	employeeID = "emp-1"
	itemID     = "item-42"
)

func newFixture(t *testing.T, stockQty int) (*orders.OrderUseCase, *memStore) {
	t.Helper()
	s := newMemStore()
	s.items[itemID] = entity.StockItem{
		ID:       itemID,
		Name:     "Paracetamol 500mg",
		Category: entity.CategoryMedicament,
		Quantity: stockQty,
		Price:    decimal.RequireFromString("3.50"),
	}
	uc := orders.NewOrderUseCase(&fakeTxRunner{s: s}, &fakeOrderRepo{s: s}, &fakeItemRepo{s: s})
	return uc, s
}

func createOrder(t *testing.T, uc *orders.OrderUseCase, qty int) *dto.OrderResponse {
	t.Helper()
	out, err := uc.Create(employeeID, dto.CreateOrderRequest{ItemID: itemID, Quantity: qty})
	require.NoError(t, err)
	require.Equal(t, entity.OrderStatusPending, out.Status)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ArticuloInexistente_RetornaInvalidReference(t *testing.T) {
	uc, _ := newFixture(t, 10)
	_, err := uc.Create(employeeID, dto.CreateOrderRequest{ItemID: "no-existe", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestCreate_CantidadInvalida_RetornaInvalidInput(t *testing.T) {
	uc, _ := newFixture(t, 10)
	_, err := uc.Create(employeeID, dto.CreateOrderRequest{ItemID: itemID, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La creación no toca el stock: la reserva ocurre recién al aceptar.
func TestCreate_NoDescuentaStock(t *testing.T) {
	uc, s := newFixture(t, 10)
	createOrder(t, uc, 3)
	assert.Equal(t, 10, s.items[itemID].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Decide — aceptación
// ──────────────────────────────────────────────────────────────────────────────

func TestDecide_Aceptar_DescuentaStockYRegistraMovimiento(t *testing.T) {
	uc, s := newFixture(t, 10)
	order := createOrder(t, uc, 3)

	out, err := uc.Decide(context.Background(), adminID, entity.RoleAdministrateur, order.ID, entity.OrderStatusAccepted)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusAccepted, out.Status)
	assert.NotNil(t, out.DecidedAt)
	assert.Equal(t, adminID, out.DecidedBy)
	assert.Equal(t, 7, s.items[itemID].Quantity, "10 - 3 = 7")

	require.Len(t, s.movements, 1)
	mov := s.movements[0]
	assert.Equal(t, entity.MovementTypeOut, mov.Type)
	assert.Equal(t, -3, mov.Quantity)
	require.NotNil(t, mov.OrderID)
	assert.Equal(t, order.ID, *mov.OrderID)
	assert.Equal(t, adminID, mov.CreatedBy)
}

// Repetir la misma decisión es un no-op: sin segundo ajuste de stock.
func TestDecide_AceptarDosVeces_EsIdempotente(t *testing.T) {
	uc, s := newFixture(t, 10)
	order := createOrder(t, uc, 3)

	_, err := uc.Decide(context.Background(), adminID, entity.RoleAdministrateur, order.ID, entity.OrderStatusAccepted)
	require.NoError(t, err)
	out, err := uc.Decide(context.Background(), adminID, entity.RoleAdministrateur, order.ID, entity.OrderStatusAccepted)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusAccepted, out.Status)
	assert.Equal(t, 7, s.items[itemID].Quantity, "la cantidad no debe descontarse dos veces")
	assert.Len(t, s.movements, 1, "no debe registrarse un segundo movimiento")
}

// Stock insuficiente: el pedido queda pending, el stock intacto y sin movimiento.
func TestDecide_AceptarSinStock_RevierteTodo(t *testing.T) {
	uc, s := newFixture(t, 2)
	order := createOrder(t, uc, 5)

	_, err := uc.Decide(context.Background(), adminID, entity.RoleAdministrateur, order.ID, entity.OrderStatusAccepted)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 2, s.items[itemID].Quantity, "el stock no debe cambiar")
	assert.Equal(t, entity.OrderStatusPending, s.orders[order.ID].Status, "el pedido debe seguir pending")
	assert.Empty(t, s.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Decide — rechazo
// ──────────────────────────────────────────────────────────────────────────────

func TestDecide_Rechazar_SumaCantidadAlStock(t *testing.T) {
	uc, s := newFixture(t, 10)
	order := createOrder(t, uc, 4)

	out, err := uc.Decide(context.Background(), adminID, entity.RoleAdministrateur, order.ID, entity.OrderStatusRefused)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusRefused, out.Status)
	assert.Equal(t, 14, s.items[itemID].Quantity, "el rechazo suma la cantidad del pedido")

	require.Len(t, s.movements, 1)
	assert.Equal(t, entity.MovementTypeIn, s.movements[0].Type)
	assert.Equal(t, 4, s.movements[0].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Decide — autorización y validación
// ──────────────────────────────────────────────────────────────────────────────

func TestDecide_EmployeNoPuedeDecidir(t *testing.T) {
	uc, s := newFixture(t, 10)
	order := createOrder(t, uc, 3)

	_, err := uc.Decide(context.Background(), employeeID, entity.RoleEmploye, order.ID, entity.OrderStatusAccepted)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, entity.OrderStatusPending, s.orders[order.ID].Status)
	assert.Equal(t, 10, s.items[itemID].Quantity)
}

func TestDecide_EstadoInvalido_RetornaInvalidInput(t *testing.T) {
	uc, _ := newFixture(t, 10)
	order := createOrder(t, uc, 3)

	_, err := uc.Decide(context.Background(), adminID, entity.RoleAdministrateur, order.ID, "pending")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Decide(context.Background(), adminID, entity.RoleAdministrateur, order.ID, "aceptadisimo")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDecide_PedidoInexistente_RetornaNotFound(t *testing.T) {
	uc, _ := newFixture(t, 10)
	_, err := uc.Decide(context.Background(), adminID, entity.RoleAdministrateur, "no-existe", entity.OrderStatusAccepted)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List / GetByID — visibilidad por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestList_EmployeSoloVeSusPedidos(t *testing.T) {
	uc, s := newFixture(t, 100)
	createOrder(t, uc, 1)
	s.orders["ajeno"] = entity.Order{ID: "ajeno", UserID: "otro", ItemID: itemID, Quantity: 1, Status: entity.OrderStatusPending}

	mine, err := uc.List(employeeID, entity.RoleEmploye, "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, mine.Items, 1)

	all, err := uc.List(adminID, entity.RoleAdministrateur, "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, all.Items, 2, "el administrador ve todos los pedidos")
}

func TestGetByID_PedidoAjeno_RetornaForbidden(t *testing.T) {
	uc, _ := newFixture(t, 10)
	order := createOrder(t, uc, 2)

	_, err := uc.GetByID("otro-usuario", entity.RoleEmploye, order.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.GetByID(adminID, entity.RoleAdministrateur, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, out.ID)
}
