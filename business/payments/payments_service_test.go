package payments_test

import (
	"context"
	"testing"

	"foodcourt/business/access"
	"foodcourt/business/payments"
	"foodcourt/domain"
	"foodcourt/internal/repository/postgres"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testCardKey = "0123456789abcdef0123456789abcdef"

var (
	admin = access.Actor{UserID: 1, Role: domain.RoleAdmin, Country: domain.CountryIndia}
	thor  = access.Actor{UserID: 4, Role: domain.RoleMember, Country: domain.CountryIndia}
	loki  = access.Actor{UserID: 5, Role: domain.RoleMember, Country: domain.CountryIndia}
)

func newService(t *testing.T) (*payments.PaymentsService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.PaymentMethod{}))

	return payments.NewPaymentsService(postgres.NewPaymentMethodsRepository(db), testCardKey), db
}

func createCard(t *testing.T, svc *payments.PaymentsService, actor access.Actor, number string, isDefault bool) domain.PaymentMethod {
	t.Helper()

	pm, err := svc.Create(context.Background(), actor, domain.PaymentMethod{
		Type:           domain.PaymentCreditCard,
		CardNumber:     number,
		CardHolderName: "Thor Odinson",
		ExpiryDate:     "12/27",
		IsDefault:      isDefault,
	})
	require.NoError(t, err)

	return pm
}

func TestCreateEncryptsAndMasks(t *testing.T) {
	svc, db := newService(t)

	pm := createCard(t, svc, thor, "4111 1111 1111 1234", false)
	assert.Equal(t, "**** **** **** 1234", pm.CardNumber)
	assert.Equal(t, thor.UserID, pm.UserID)

	// the stored value is ciphertext, not the pan
	var stored domain.PaymentMethod
	require.NoError(t, db.First(&stored, pm.ID).Error)
	assert.NotEqual(t, "4111111111111234", stored.CardNumber)
	assert.NotContains(t, stored.CardNumber, "4111111111111234")

	// reads decrypt and mask back down to the last four digits
	got, err := svc.FindOne(context.Background(), thor, pm.ID)
	require.NoError(t, err)
	assert.Equal(t, "**** **** **** 1234", got.CardNumber)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, thor, domain.PaymentMethod{
		Type:       domain.PaymentMethodType("BARTER"),
		CardNumber: "4111111111111234",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	_, err = svc.Create(ctx, thor, domain.PaymentMethod{
		Type:       domain.PaymentCreditCard,
		CardNumber: "12",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestSingleDefault(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	first := createCard(t, svc, thor, "4111111111111111", true)
	second := createCard(t, svc, thor, "5555555555552222", true)
	assert.True(t, second.IsDefault)

	all, err := svc.FindAll(ctx, thor)
	require.NoError(t, err)
	require.Len(t, all, 2)

	defaults := 0
	for _, pm := range all {
		if pm.IsDefault {
			defaults++
			assert.Equal(t, second.ID, pm.ID)
		}
	}
	assert.Equal(t, 1, defaults)

	// flipping the default back is the owner's call
	restored, err := svc.SetDefault(ctx, thor, first.ID)
	require.NoError(t, err)
	assert.True(t, restored.IsDefault)

	all, err = svc.FindAll(ctx, thor)
	require.NoError(t, err)
	defaults = 0
	for _, pm := range all {
		if pm.IsDefault {
			defaults++
			assert.Equal(t, first.ID, pm.ID)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestSetDefaultIsOwnerOnly(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	pm := createCard(t, svc, thor, "4111111111111111", false)

	_, err := svc.SetDefault(ctx, loki, pm.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// even admins only default their own methods
	_, err = svc.SetDefault(ctx, admin, pm.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestFindOneAccess(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	pm := createCard(t, svc, thor, "4111111111119876", false)

	got, err := svc.FindOne(ctx, thor, pm.ID)
	require.NoError(t, err)
	assert.Equal(t, "**** **** **** 9876", got.CardNumber)

	_, err = svc.FindOne(ctx, loki, pm.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err = svc.FindOne(ctx, admin, pm.ID)
	require.NoError(t, err)
	assert.Equal(t, "**** **** **** 9876", got.CardNumber)

	_, err = svc.FindOne(ctx, admin, 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateIsAdminOnly(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	pm := createCard(t, svc, thor, "4111111111111111", false)

	newHolder := "Thor, King of Asgard"
	_, err := svc.Update(ctx, thor, pm.ID, payments.UpdateInput{CardHolderName: &newHolder})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	newNumber := "5555 5555 5555 4444"
	updated, err := svc.Update(ctx, admin, pm.ID, payments.UpdateInput{
		CardNumber:     &newNumber,
		CardHolderName: &newHolder,
	})
	require.NoError(t, err)
	assert.Equal(t, "**** **** **** 4444", updated.CardNumber)
	assert.Equal(t, newHolder, updated.CardHolderName)
}

func TestRemoveIsAdminOnly(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	pm := createCard(t, svc, thor, "4111111111111111", false)

	err := svc.Remove(ctx, thor, pm.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, svc.Remove(ctx, admin, pm.ID))

	// removal is a hard delete
	_, err = svc.FindOne(ctx, admin, pm.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
