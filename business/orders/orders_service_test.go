package orders_test

import (
	"context"
	"errors"
	"testing"

	"foodcourt/business/access"
	"foodcourt/business/orders"
	"foodcourt/domain"
	"foodcourt/internal/repository/postgres"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	admin     = access.Actor{UserID: 1, Role: domain.RoleAdmin, Country: domain.CountryIndia}
	managerIN = access.Actor{UserID: 2, Role: domain.RoleManager, Country: domain.CountryIndia}
	managerUS = access.Actor{UserID: 3, Role: domain.RoleManager, Country: domain.CountryAmerica}
	memberIN  = access.Actor{UserID: 4, Role: domain.RoleMember, Country: domain.CountryIndia}
	memberUS  = access.Actor{UserID: 5, Role: domain.RoleMember, Country: domain.CountryAmerica}
)

type fixture struct {
	db  *gorm.DB
	svc *orders.OrdersService

	spiceGarden   domain.Restaurant
	butterChicken domain.MenuItem
	naan          domain.MenuItem
	offMenu       domain.MenuItem

	burgerPalace  domain.Restaurant
	classicBurger domain.MenuItem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Restaurant{},
		&domain.MenuItem{},
		&domain.Order{},
		&domain.OrderItem{},
	))

	f := &fixture{db: db}

	f.spiceGarden = domain.Restaurant{Name: "Spice Garden", Country: domain.CountryIndia, IsActive: true}
	require.NoError(t, db.Create(&f.spiceGarden).Error)
	f.burgerPalace = domain.Restaurant{Name: "Burger Palace", Country: domain.CountryAmerica, IsActive: true}
	require.NoError(t, db.Create(&f.burgerPalace).Error)

	f.butterChicken = domain.MenuItem{RestaurantID: f.spiceGarden.ID, Name: "Butter Chicken", Price: 450, IsAvailable: true}
	require.NoError(t, db.Create(&f.butterChicken).Error)
	f.naan = domain.MenuItem{RestaurantID: f.spiceGarden.ID, Name: "Naan", Price: 80, IsAvailable: true}
	require.NoError(t, db.Create(&f.naan).Error)
	f.offMenu = domain.MenuItem{RestaurantID: f.spiceGarden.ID, Name: "Seasonal Thali", Price: 200, IsAvailable: false}
	require.NoError(t, db.Create(&f.offMenu).Error)
	f.classicBurger = domain.MenuItem{RestaurantID: f.burgerPalace.ID, Name: "Classic Burger", Price: 9, IsAvailable: true}
	require.NoError(t, db.Create(&f.classicBurger).Error)

	f.svc = orders.NewOrdersService(
		postgres.NewOrdersRepository(db),
		postgres.NewRestaurantRepository(db),
		postgres.NewMenuItemRepository(db),
	)

	return f
}

func (f *fixture) placeOrder(t *testing.T, actor access.Actor, paymentMethodID *uint) domain.Order {
	t.Helper()

	order, err := f.svc.Create(context.Background(), actor, f.spiceGarden.ID, []orders.OrderLine{
		{MenuItemID: f.butterChicken.ID, Quantity: 2},
		{MenuItemID: f.naan.ID, Quantity: 1},
	}, paymentMethodID)
	require.NoError(t, err)

	return order
}

func TestCreateOrderSnapshotsPrices(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order := f.placeOrder(t, memberIN, nil)

	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, domain.CountryIndia, order.Country)
	assert.Equal(t, memberIN.UserID, order.UserID)
	assert.Equal(t, 980.0, order.TotalAmount)
	assert.NotEmpty(t, order.Number)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 450.0, order.Items[0].Price)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 80.0, order.Items[1].Price)

	// raising the menu price must not touch the existing order
	err := f.db.Model(&domain.MenuItem{}).
		Where("id = ?", f.butterChicken.ID).
		Update("price", 999).Error
	require.NoError(t, err)

	reloaded, err := f.svc.FindOne(ctx, memberIN, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 980.0, reloaded.TotalAmount)
	require.Len(t, reloaded.Items, 2)
	assert.Equal(t, 450.0, reloaded.Items[0].Price)
}

func TestCreateOrderCrossCountry(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), memberUS, f.spiceGarden.ID, []orders.OrderLine{
		{MenuItemID: f.butterChicken.ID, Quantity: 1},
	}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// admins order from any country
	_, err = f.svc.Create(context.Background(), admin, f.burgerPalace.ID, []orders.OrderLine{
		{MenuItemID: f.classicBurger.ID, Quantity: 1},
	}, nil)
	assert.NoError(t, err)
}

func TestCreateOrderValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// an item created unavailable must be stored unavailable
	var stored domain.MenuItem
	require.NoError(t, f.db.First(&stored, f.offMenu.ID).Error)
	require.False(t, stored.IsAvailable)

	tests := []struct {
		name         string
		restaurantID uint
		lines        []orders.OrderLine
		wantErr      error
	}{
		{
			name:         "no items",
			restaurantID: f.spiceGarden.ID,
			lines:        nil,
			wantErr:      domain.ErrBadRequest,
		},
		{
			name:         "zero quantity",
			restaurantID: f.spiceGarden.ID,
			lines:        []orders.OrderLine{{MenuItemID: f.naan.ID, Quantity: 0}},
			wantErr:      domain.ErrBadRequest,
		},
		{
			name:         "unavailable item",
			restaurantID: f.spiceGarden.ID,
			lines:        []orders.OrderLine{{MenuItemID: f.offMenu.ID, Quantity: 1}},
			wantErr:      domain.ErrBadRequest,
		},
		{
			name:         "item from another restaurant",
			restaurantID: f.spiceGarden.ID,
			lines:        []orders.OrderLine{{MenuItemID: f.classicBurger.ID, Quantity: 1}},
			wantErr:      domain.ErrBadRequest,
		},
		{
			name:         "unknown restaurant",
			restaurantID: 9999,
			lines:        []orders.OrderLine{{MenuItemID: f.naan.ID, Quantity: 1}},
			wantErr:      domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(ctx, memberIN, tt.restaurantID, tt.lines, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("requires payment method", func(t *testing.T) {
		order := f.placeOrder(t, memberIN, nil)

		_, err := f.svc.Checkout(ctx, memberIN, order.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("confirms pending order once", func(t *testing.T) {
		pmID := uint(1)
		order := f.placeOrder(t, memberIN, &pmID)

		confirmed, err := f.svc.Checkout(ctx, memberIN, order.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderConfirmed, confirmed.Status)

		_, err = f.svc.Checkout(ctx, memberIN, order.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})
}

func TestCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("members cannot cancel their own order", func(t *testing.T) {
		order := f.placeOrder(t, memberIN, nil)

		_, err := f.svc.Cancel(ctx, memberIN, order.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("manager cancels in own country only", func(t *testing.T) {
		order := f.placeOrder(t, memberIN, nil)

		_, err := f.svc.Cancel(ctx, managerUS, order.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrForbidden)

		cancelled, err := f.svc.Cancel(ctx, managerIN, order.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderCancelled, cancelled.Status)

		// cancelled is terminal
		_, err = f.svc.Cancel(ctx, managerIN, order.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("delivered is terminal", func(t *testing.T) {
		order := f.placeOrder(t, memberIN, nil)
		require.NoError(t, f.db.Model(&domain.Order{}).
			Where("id = ?", order.ID).
			Update("status", domain.OrderDelivered).Error)

		_, err := f.svc.Cancel(ctx, admin, order.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("members never update status", func(t *testing.T) {
		order := f.placeOrder(t, memberIN, nil)

		_, err := f.svc.UpdateStatus(ctx, memberIN, order.ID, domain.OrderConfirmed)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("manager is country confined", func(t *testing.T) {
		order := f.placeOrder(t, memberIN, nil)

		_, err := f.svc.UpdateStatus(ctx, managerUS, order.ID, domain.OrderConfirmed)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrForbidden)

		updated, err := f.svc.UpdateStatus(ctx, managerIN, order.ID, domain.OrderDelivered)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderDelivered, updated.Status)
	})

	t.Run("no ordering between states", func(t *testing.T) {
		order := f.placeOrder(t, memberIN, nil)

		_, err := f.svc.UpdateStatus(ctx, admin, order.ID, domain.OrderDelivered)
		require.NoError(t, err)

		// a delivered order can be moved straight back to pending
		updated, err := f.svc.UpdateStatus(ctx, admin, order.ID, domain.OrderPending)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderPending, updated.Status)
	})

	t.Run("preparing is not assignable", func(t *testing.T) {
		order := f.placeOrder(t, memberIN, nil)

		_, err := f.svc.UpdateStatus(ctx, admin, order.ID, domain.OrderPreparing)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBadRequest)

		_, err = f.svc.UpdateStatus(ctx, admin, order.ID, domain.OrderStatus("SHIPPED"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})
}

func TestFindAllVisibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.placeOrder(t, memberIN, nil)
	_, err := f.svc.Create(ctx, memberUS, f.burgerPalace.ID, []orders.OrderLine{
		{MenuItemID: f.classicBurger.ID, Quantity: 3},
	}, nil)
	require.NoError(t, err)

	all, err := f.svc.FindAll(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	inCountry, err := f.svc.FindAll(ctx, managerIN)
	require.NoError(t, err)
	require.Len(t, inCountry, 1)
	assert.Equal(t, domain.CountryIndia, inCountry[0].Country)

	own, err := f.svc.FindAll(ctx, memberUS)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, memberUS.UserID, own[0].UserID)
}

func TestFindOne(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order := f.placeOrder(t, memberIN, nil)

	_, err := f.svc.FindOne(ctx, memberUS, order.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.svc.FindOne(ctx, memberIN, 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, errors.Is(err, domain.ErrForbidden))
}
