package orders

import (
	"context"
	"fmt"

	"foodcourt/business/access"
	"foodcourt/business/catalog"
	"foodcourt/domain"
	"foodcourt/pkg/logger"
	"foodcourt/pkg/metrics"

	"github.com/google/uuid"
)

// OrdersRepository contract interface
type OrdersRepository interface {
	CreateWithItems(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id uint) (domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindAllByCountry(ctx context.Context, country domain.Country) ([]domain.Order, error)
	FindAllByUser(ctx context.Context, userID uint) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) error
}

type OrdersService struct {
	orderRepo      OrdersRepository
	restaurantRepo catalog.RestaurantRepository
	menuRepo       catalog.MenuItemRepository
}

func NewOrdersService(orderRepo OrdersRepository, restaurantRepo catalog.RestaurantRepository, menuRepo catalog.MenuItemRepository) *OrdersService {
	return &OrdersService{
		orderRepo:      orderRepo,
		restaurantRepo: restaurantRepo,
		menuRepo:       menuRepo,
	}
}

// OrderLine is one requested cart entry.
type OrderLine struct {
	MenuItemID uint
	Quantity   int
}

// Create places an order. Unit prices are read live, summed, and then
// snapshotted onto the order items, so later menu edits never change an
// existing order. Order, items and the country snapshot are persisted as
// one transaction.
func (s *OrdersService) Create(ctx context.Context, actor access.Actor, restaurantID uint, lines []OrderLine, paymentMethodID *uint) (domain.Order, error) {
	if len(lines) == 0 {
		return domain.Order{}, fmt.Errorf("%w: items are required", domain.ErrBadRequest)
	}

	restaurant, err := s.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		return domain.Order{}, err
	}

	if !access.CanAccessCountry(actor, restaurant.Country) {
		return domain.Order{}, fmt.Errorf("%w: you can only order from restaurants in your country", domain.ErrForbidden)
	}

	var total float64
	items := make([]domain.OrderItem, 0, len(lines))

	for _, line := range lines {
		if line.Quantity < 1 {
			return domain.Order{}, fmt.Errorf("%w: quantity must be at least 1", domain.ErrBadRequest)
		}

		menuItem, err := s.menuRepo.FindByID(ctx, line.MenuItemID)
		if err != nil || !menuItem.IsAvailable {
			return domain.Order{}, fmt.Errorf("%w: menu item %d not available", domain.ErrBadRequest, line.MenuItemID)
		}

		if menuItem.RestaurantID != restaurantID {
			return domain.Order{}, fmt.Errorf("%w: menu item %d does not belong to this restaurant", domain.ErrBadRequest, line.MenuItemID)
		}

		total += menuItem.Price * float64(line.Quantity)
		items = append(items, domain.OrderItem{
			MenuItemID: menuItem.ID,
			Quantity:   line.Quantity,
			Price:      menuItem.Price,
		})
	}

	order := domain.Order{
		Number:          uuid.NewString(),
		UserID:          actor.UserID,
		RestaurantID:    restaurantID,
		Status:          domain.OrderPending,
		TotalAmount:     total,
		PaymentMethodID: paymentMethodID,
		Country:         restaurant.Country,
		Items:           items,
	}

	if err := s.orderRepo.CreateWithItems(ctx, &order); err != nil {
		logger.Error("Failed to create order", err)
		return domain.Order{}, err
	}

	metrics.OrdersCreated.WithLabelValues(string(order.Country)).Inc()
	metrics.OrderTotalAmount.Observe(total)

	return order, nil
}

// FindAll returns the actor's visible slice of orders: everything for
// admins, the own country for managers, own orders for members.
func (s *OrdersService) FindAll(ctx context.Context, actor access.Actor) ([]domain.Order, error) {
	switch {
	case actor.IsAdmin():
		return s.orderRepo.FindAll(ctx)
	case actor.IsManager():
		return s.orderRepo.FindAllByCountry(ctx, actor.Country)
	default:
		return s.orderRepo.FindAllByUser(ctx, actor.UserID)
	}
}

func (s *OrdersService) FindOne(ctx context.Context, actor access.Actor, id uint) (domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}

	if !access.CanViewOrder(actor, order) {
		if actor.IsManager() {
			return domain.Order{}, fmt.Errorf("%w: you can only view orders from your country", domain.ErrForbidden)
		}
		return domain.Order{}, fmt.Errorf("%w: you can only view your own orders", domain.ErrForbidden)
	}

	return order, nil
}

// Checkout moves a pending order with a payment method to CONFIRMED.
func (s *OrdersService) Checkout(ctx context.Context, actor access.Actor, id uint) (domain.Order, error) {
	order, err := s.FindOne(ctx, actor, id)
	if err != nil {
		return domain.Order{}, err
	}

	if order.Status != domain.OrderPending {
		return domain.Order{}, fmt.Errorf("%w: order has already been processed", domain.ErrBadRequest)
	}

	if order.PaymentMethodID == nil {
		return domain.Order{}, fmt.Errorf("%w: payment method is required", domain.ErrBadRequest)
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, domain.OrderConfirmed); err != nil {
		return domain.Order{}, err
	}

	order.Status = domain.OrderConfirmed
	return order, nil
}

// Cancel is never available to members, and CANCELLED/DELIVERED are
// terminal for it.
func (s *OrdersService) Cancel(ctx context.Context, actor access.Actor, id uint) (domain.Order, error) {
	order, err := s.FindOne(ctx, actor, id)
	if err != nil {
		return domain.Order{}, err
	}

	if actor.IsMember() {
		return domain.Order{}, fmt.Errorf("%w: members cannot cancel orders", domain.ErrForbidden)
	}

	if order.Status == domain.OrderCancelled {
		return domain.Order{}, fmt.Errorf("%w: order is already cancelled", domain.ErrBadRequest)
	}

	if order.Status == domain.OrderDelivered {
		return domain.Order{}, fmt.Errorf("%w: cannot cancel a delivered order", domain.ErrBadRequest)
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, domain.OrderCancelled); err != nil {
		return domain.Order{}, err
	}

	order.Status = domain.OrderCancelled
	return order, nil
}

// UpdateStatus sets the status directly. Unlike Checkout and Cancel it
// enforces no ordering between states; any assignable value is accepted
// once the role and country checks pass. PREPARING is not assignable here.
func (s *OrdersService) UpdateStatus(ctx context.Context, actor access.Actor, id uint, status domain.OrderStatus) (domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}

	if !access.CanProgressOrder(actor, order) {
		if actor.IsMember() {
			return domain.Order{}, fmt.Errorf("%w: members cannot update order status", domain.ErrForbidden)
		}
		return domain.Order{}, fmt.Errorf("%w: you can only update orders from your country", domain.ErrForbidden)
	}

	if !status.Assignable() {
		return domain.Order{}, fmt.Errorf("%w: invalid status", domain.ErrBadRequest)
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return domain.Order{}, err
	}

	order.Status = status
	return order, nil
}
