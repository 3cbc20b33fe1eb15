package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// StockUseCase casos de uso de inventario: CRUD de artículos, lectura/ajuste de
// cantidad y consulta del registro de movimientos.
type StockUseCase struct {
	txRunner TxRunner
	itemRepo repository.StockItemRepository
	movRepo  repository.StockMovementRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner TxRunner, itemRepo repository.StockItemRepository, movRepo repository.StockMovementRepository) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, itemRepo: itemRepo, movRepo: movRepo}
}

// Create crea un nuevo artículo de stock.
func (uc *StockUseCase) Create(in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	if in.Name == "" || !entity.IsCategory(in.Category) || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.StockItem{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Quantity:    in.Quantity,
		Price:       in.Price,
		SupplierID:  in.SupplierID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo por ID.
func (uc *StockUseCase) GetByID(id string) (*dto.StockItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// List lista artículos, filtro por categoría (vacía = todas).
func (uc *StockUseCase) List(category string, limit, offset int) (*dto.StockItemListResponse, error) {
	if category != "" && !entity.IsCategory(category) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.itemRepo.List(category, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.StockItemListResponse{
		Items: make([]dto.StockItemResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, it := range list {
		out.Items = append(out.Items, *toItemResponse(it))
	}
	return out, nil
}

// Update actualiza los datos descriptivos de un artículo (no la cantidad).
func (uc *StockUseCase) Update(id string, in dto.UpdateStockItemRequest) (*dto.StockItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Category != nil {
		if !entity.IsCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		item.Category = *in.Category
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.SupplierID != nil {
		item.SupplierID = in.SupplierID
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un artículo. ErrConflict si hay pedidos o movimientos que lo referencian.
func (uc *StockUseCase) Delete(id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.itemRepo.Delete(id)
}

// GetQuantity lee la cantidad disponible de un artículo.
func (uc *StockUseCase) GetQuantity(id string) (*dto.QuantityResponse, error) {
	qty, err := uc.itemRepo.GetQuantity(id)
	if err != nil {
		return nil, err
	}
	return &dto.QuantityResponse{ItemID: id, Quantity: qty}, nil
}

// SetQuantity sobrescribe la cantidad disponible de un artículo (ajuste de
// administrador). Corre en transacción con bloqueo de fila y deja el delta
// aplicado como movimiento adjust.
func (uc *StockUseCase) SetQuantity(ctx context.Context, adminID, itemID string, in dto.SetQuantityRequest) (*dto.QuantityResponse, error) {
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	err := uc.txRunner.Run(ctx, func(
		_ repository.OrderRepository,
		itemRepo repository.StockItemRepository,
		movRepo repository.StockMovementRepository,
	) error {
		item, err := itemRepo.GetByIDForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.Quantity == in.Quantity {
			// Nada que ajustar
			return nil
		}
		if err := itemRepo.UpdateQuantity(itemID, in.Quantity); err != nil {
			return err
		}
		return movRepo.Create(&entity.StockMovement{
			ItemID:    itemID,
			Type:      entity.MovementTypeAdjust,
			Quantity:  in.Quantity - item.Quantity,
			Reason:    in.Reason,
			CreatedAt: time.Now(),
			CreatedBy: adminID,
		})
	})
	if err != nil {
		return nil, err
	}
	return &dto.QuantityResponse{ItemID: itemID, Quantity: in.Quantity}, nil
}

// ListMovements lista el registro de auditoría de un artículo.
func (uc *StockUseCase) ListMovements(itemID string, limit, offset int) (*dto.StockMovementListResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.movRepo.ListByItem(itemID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.StockMovementListResponse{
		Items: make([]dto.StockMovementResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, m := range list {
		out.Items = append(out.Items, dto.StockMovementResponse{
			ID:        m.ID,
			ItemID:    m.ItemID,
			OrderID:   m.OrderID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Reason:    m.Reason,
			CreatedAt: m.CreatedAt,
			CreatedBy: m.CreatedBy,
		})
	}
	return out, nil
}

func toItemResponse(it *entity.StockItem) *dto.StockItemResponse {
	if it == nil {
		return nil
	}
	return &dto.StockItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Category:    it.Category,
		Quantity:    it.Quantity,
		Price:       it.Price,
		SupplierID:  it.SupplierID,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}
