package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// OrderUseCase orquesta el ciclo de vida de pedidos: creación por usuarios y
// decisión (accept/refuse) por administradores con ajuste de stock compensatorio.
// La decisión corre en una transacción con bloqueo de fila (SELECT FOR UPDATE):
// o cambian juntos estado, cantidad y auditoría, o no cambia nada.
type OrderUseCase struct {
	txRunner  TxRunner
	orderRepo repository.OrderRepository
	itemRepo  repository.StockItemRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner TxRunner, orderRepo repository.OrderRepository, itemRepo repository.StockItemRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, orderRepo: orderRepo, itemRepo: itemRepo}
}

// Create registra un pedido en estado pending para el usuario autenticado.
func (uc *OrderUseCase) Create(userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.ItemID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrInvalidReference
	}
	order := &entity.Order{
		ID:        uuid.New().String(),
		UserID:    userID,
		ItemID:    in.ItemID,
		Quantity:  in.Quantity,
		Status:    entity.OrderStatusPending,
		CreatedAt: time.Now(),
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista pedidos filtrados por estado, más recientes primero.
// Un administrador ve todos los pedidos; cualquier otro usuario solo los suyos.
func (uc *OrderUseCase) List(userID, role, status string, limit, offset int) (*dto.OrderListResponse, error) {
	if status != "" && !entity.IsOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	var (
		list []*entity.Order
		err  error
	)
	if role == entity.RoleAdministrateur {
		list, err = uc.orderRepo.List(status, limit, offset)
	} else {
		list, err = uc.orderRepo.ListByUser(userID, status, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{
		Items: make([]dto.OrderResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, o := range list {
		out.Items = append(out.Items, *toOrderResponse(o))
	}
	return out, nil
}

// GetByID obtiene un pedido. Solo el dueño o un administrador pueden verlo.
func (uc *OrderUseCase) GetByID(userID, role, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if role != entity.RoleAdministrateur && order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return toOrderResponse(order), nil
}

// Decide transiciona un pedido a accepted o refused y ajusta el stock vinculado.
//
//   - accepted: resta la cantidad del pedido; ErrInsufficientStock si quedaría
//     negativa, y en ese caso el pedido permanece pending y el stock intacto.
//   - refused: suma la cantidad del pedido, sin cota superior.
//   - pedido ya en el estado destino: no-op, sin doble ajuste de stock.
//
// El rol se verifica aquí además del middleware: la frontera que muta es la
// misma que autoriza.
func (uc *OrderUseCase) Decide(ctx context.Context, adminID, role, orderID, newStatus string) (*dto.OrderResponse, error) {
	if role != entity.RoleAdministrateur {
		return nil, domain.ErrForbidden
	}
	if !entity.IsDecisionStatus(newStatus) {
		return nil, domain.ErrInvalidInput
	}

	var decided *entity.Order
	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		itemRepo repository.StockItemRepository,
		movRepo repository.StockMovementRepository,
	) error {
		order, err := orderRepo.GetByIDForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status == newStatus {
			// Idempotencia: la decisión ya fue aplicada
			decided = order
			return nil
		}
		if order.ItemID == "" {
			return domain.ErrInvalidReference
		}
		item, err := itemRepo.GetByIDForUpdate(order.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrInvalidReference
		}

		var newQty int
		var movement *entity.StockMovement
		now := time.Now()
		switch newStatus {
		case entity.OrderStatusAccepted:
			newQty = item.Quantity - order.Quantity
			if newQty < 0 {
				return domain.ErrInsufficientStock
			}
			movement = &entity.StockMovement{
				ItemID:    item.ID,
				OrderID:   &order.ID,
				Type:      entity.MovementTypeOut,
				Quantity:  -order.Quantity,
				Reason:    "pedido aceptado",
				CreatedAt: now,
				CreatedBy: adminID,
			}
		case entity.OrderStatusRefused:
			newQty = item.Quantity + order.Quantity
			movement = &entity.StockMovement{
				ItemID:    item.ID,
				OrderID:   &order.ID,
				Type:      entity.MovementTypeIn,
				Quantity:  order.Quantity,
				Reason:    "pedido rechazado",
				CreatedAt: now,
				CreatedBy: adminID,
			}
		}

		order.Status = newStatus
		order.DecidedAt = &now
		order.DecidedBy = adminID
		if err := orderRepo.UpdateStatus(order); err != nil {
			return err
		}
		if err := itemRepo.UpdateQuantity(item.ID, newQty); err != nil {
			return err
		}
		if err := movRepo.Create(movement); err != nil {
			return err
		}
		decided = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(decided), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		ItemID:    o.ItemID,
		Quantity:  o.Quantity,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		DecidedAt: o.DecidedAt,
		DecidedBy: o.DecidedBy,
	}
}
