package catalog

import (
	"context"
	"fmt"

	"foodcourt/business/access"
	"foodcourt/domain"
	"foodcourt/pkg/logger"
)

// RestaurantRepository contract interface
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *domain.Restaurant) error
	FindByID(ctx context.Context, id uint) (domain.Restaurant, error)
	FindAllActive(ctx context.Context, country *domain.Country) ([]domain.Restaurant, error)
	Update(ctx context.Context, restaurant *domain.Restaurant) error
	SoftDelete(ctx context.Context, id uint) error
}

// MenuItemRepository contract interface
type MenuItemRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	FindByID(ctx context.Context, id uint) (domain.MenuItem, error)
	FindAvailableByRestaurant(ctx context.Context, restaurantID uint) ([]domain.MenuItem, error)
	Update(ctx context.Context, item *domain.MenuItem) error
	SoftDelete(ctx context.Context, id uint) error
}

type CatalogService struct {
	restaurantRepo RestaurantRepository
	menuRepo       MenuItemRepository
}

func NewCatalogService(restaurantRepo RestaurantRepository, menuRepo MenuItemRepository) *CatalogService {
	return &CatalogService{
		restaurantRepo: restaurantRepo,
		menuRepo:       menuRepo,
	}
}

// ListRestaurants returns active restaurants, unfiltered for admins and
// country-confined for everyone else.
func (s *CatalogService) ListRestaurants(ctx context.Context, actor access.Actor) ([]domain.Restaurant, error) {
	if actor.IsAdmin() {
		return s.restaurantRepo.FindAllActive(ctx, nil)
	}

	country := actor.Country
	return s.restaurantRepo.FindAllActive(ctx, &country)
}

// GetRestaurant loads one restaurant. A cross-country request by a
// non-admin is forbidden, never silently filtered; a bogus id is not-found
// before any access decision is made.
func (s *CatalogService) GetRestaurant(ctx context.Context, actor access.Actor, id uint) (domain.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		return domain.Restaurant{}, err
	}

	if !access.CanAccessCountry(actor, restaurant.Country) {
		return domain.Restaurant{}, fmt.Errorf("%w: you can only access restaurants in your country", domain.ErrForbidden)
	}

	return restaurant, nil
}

func (s *CatalogService) ListMenu(ctx context.Context, actor access.Actor, restaurantID uint) ([]domain.MenuItem, error) {
	if _, err := s.GetRestaurant(ctx, actor, restaurantID); err != nil {
		return nil, err
	}

	return s.menuRepo.FindAvailableByRestaurant(ctx, restaurantID)
}

// CreateRestaurant: admins choose the country, managers always create in
// their own country regardless of the requested value.
func (s *CatalogService) CreateRestaurant(ctx context.Context, actor access.Actor, restaurant *domain.Restaurant) (domain.Restaurant, error) {
	if !access.CanManageCatalog(actor) {
		return domain.Restaurant{}, fmt.Errorf("%w: members cannot manage restaurants", domain.ErrForbidden)
	}

	if !actor.IsAdmin() {
		restaurant.Country = actor.Country
	}

	if !restaurant.Country.Valid() {
		return domain.Restaurant{}, fmt.Errorf("%w: invalid country", domain.ErrBadRequest)
	}

	restaurant.IsActive = true
	if err := s.restaurantRepo.Create(ctx, restaurant); err != nil {
		logger.Error("Failed to create restaurant", err)
		return domain.Restaurant{}, err
	}

	return *restaurant, nil
}

func (s *CatalogService) UpdateRestaurant(ctx context.Context, actor access.Actor, id uint, name, description string) (domain.Restaurant, error) {
	restaurant, err := s.loadManaged(ctx, actor, id)
	if err != nil {
		return domain.Restaurant{}, err
	}

	if name != "" {
		restaurant.Name = name
	}
	if description != "" {
		restaurant.Description = description
	}

	if err := s.restaurantRepo.Update(ctx, &restaurant); err != nil {
		logger.Error("Failed to update restaurant", err)
		return domain.Restaurant{}, err
	}

	return restaurant, nil
}

// DeleteRestaurant flips the active flag; the row stays.
func (s *CatalogService) DeleteRestaurant(ctx context.Context, actor access.Actor, id uint) error {
	if _, err := s.loadManaged(ctx, actor, id); err != nil {
		return err
	}

	if err := s.restaurantRepo.SoftDelete(ctx, id); err != nil {
		logger.Error("Failed to deactivate restaurant", err)
		return err
	}

	return nil
}

func (s *CatalogService) CreateMenuItem(ctx context.Context, actor access.Actor, restaurantID uint, item *domain.MenuItem) (domain.MenuItem, error) {
	if _, err := s.loadManaged(ctx, actor, restaurantID); err != nil {
		return domain.MenuItem{}, err
	}

	if item.Price < 0 {
		return domain.MenuItem{}, fmt.Errorf("%w: price cannot be negative", domain.ErrBadRequest)
	}

	item.RestaurantID = restaurantID
	item.IsAvailable = true

	if err := s.menuRepo.Create(ctx, item); err != nil {
		logger.Error("Failed to create menu item", err)
		return domain.MenuItem{}, err
	}

	return *item, nil
}

func (s *CatalogService) UpdateMenuItem(ctx context.Context, actor access.Actor, restaurantID, menuItemID uint, upd domain.MenuItem) (domain.MenuItem, error) {
	item, err := s.loadManagedMenuItem(ctx, actor, restaurantID, menuItemID)
	if err != nil {
		return domain.MenuItem{}, err
	}

	if upd.Name != "" {
		item.Name = upd.Name
	}
	if upd.Description != "" {
		item.Description = upd.Description
	}
	if upd.Category != "" {
		item.Category = upd.Category
	}
	if upd.Price != 0 {
		if upd.Price < 0 {
			return domain.MenuItem{}, fmt.Errorf("%w: price cannot be negative", domain.ErrBadRequest)
		}
		item.Price = upd.Price
	}

	if err := s.menuRepo.Update(ctx, &item); err != nil {
		logger.Error("Failed to update menu item", err)
		return domain.MenuItem{}, err
	}

	return item, nil
}

func (s *CatalogService) DeleteMenuItem(ctx context.Context, actor access.Actor, restaurantID, menuItemID uint) error {
	if _, err := s.loadManagedMenuItem(ctx, actor, restaurantID, menuItemID); err != nil {
		return err
	}

	if err := s.menuRepo.SoftDelete(ctx, menuItemID); err != nil {
		logger.Error("Failed to deactivate menu item", err)
		return err
	}

	return nil
}

// loadManaged loads a restaurant for mutation: existence first, then the
// role check, then the country confinement for managers.
func (s *CatalogService) loadManaged(ctx context.Context, actor access.Actor, id uint) (domain.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		return domain.Restaurant{}, err
	}

	if !access.CanManageCatalog(actor) {
		return domain.Restaurant{}, fmt.Errorf("%w: members cannot manage restaurants", domain.ErrForbidden)
	}

	if !access.CanAccessCountry(actor, restaurant.Country) {
		return domain.Restaurant{}, fmt.Errorf("%w: you can only manage restaurants in your country", domain.ErrForbidden)
	}

	return restaurant, nil
}

func (s *CatalogService) loadManagedMenuItem(ctx context.Context, actor access.Actor, restaurantID, menuItemID uint) (domain.MenuItem, error) {
	if _, err := s.loadManaged(ctx, actor, restaurantID); err != nil {
		return domain.MenuItem{}, err
	}

	item, err := s.menuRepo.FindByID(ctx, menuItemID)
	if err != nil {
		return domain.MenuItem{}, err
	}

	// an item reached through the wrong restaurant path does not exist as
	// far as the caller is concerned
	if item.RestaurantID != restaurantID {
		return domain.MenuItem{}, fmt.Errorf("menu item %w", domain.ErrNotFound)
	}

	return item, nil
}
