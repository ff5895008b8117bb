package access

import (
	"testing"

	"foodcourt/domain"
)

var (
	admin         = Actor{UserID: 1, Role: domain.RoleAdmin, Country: domain.CountryIndia}
	managerIndia  = Actor{UserID: 2, Role: domain.RoleManager, Country: domain.CountryIndia}
	managerUS     = Actor{UserID: 3, Role: domain.RoleManager, Country: domain.CountryAmerica}
	memberIndia   = Actor{UserID: 4, Role: domain.RoleMember, Country: domain.CountryIndia}
	memberAmerica = Actor{UserID: 5, Role: domain.RoleMember, Country: domain.CountryAmerica}
)

func TestCanAccessCountry(t *testing.T) {
	tests := []struct {
		name    string
		actor   Actor
		country domain.Country
		want    bool
	}{
		{"admin crosses countries", admin, domain.CountryAmerica, true},
		{"admin own country", admin, domain.CountryIndia, true},
		{"manager own country", managerIndia, domain.CountryIndia, true},
		{"manager foreign country", managerUS, domain.CountryIndia, false},
		{"member own country", memberIndia, domain.CountryIndia, true},
		{"member foreign country", memberIndia, domain.CountryAmerica, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccessCountry(tt.actor, tt.country); got != tt.want {
				t.Errorf("CanAccessCountry() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanManageCatalog(t *testing.T) {
	if !CanManageCatalog(admin) || !CanManageCatalog(managerIndia) {
		t.Error("admins and managers must be able to manage the catalog")
	}
	if CanManageCatalog(memberIndia) {
		t.Error("members must not manage the catalog")
	}
}

func TestCanViewOrder(t *testing.T) {
	order := domain.Order{ID: 10, UserID: memberIndia.UserID, Country: domain.CountryIndia}

	tests := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"admin sees any order", admin, true},
		{"manager same country", managerIndia, true},
		{"manager foreign country", managerUS, false},
		{"member owns order", memberIndia, true},
		{"member foreign order", memberAmerica, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanViewOrder(tt.actor, order); got != tt.want {
				t.Errorf("CanViewOrder() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanProgressOrder(t *testing.T) {
	own := domain.Order{ID: 11, UserID: memberIndia.UserID, Country: domain.CountryIndia}

	if CanProgressOrder(memberIndia, own) {
		t.Error("member must not progress their own order")
	}
	if CanProgressOrder(managerUS, own) {
		t.Error("manager must not progress a foreign-country order")
	}
	if !CanProgressOrder(managerIndia, own) {
		t.Error("manager must progress own-country orders")
	}
	if !CanProgressOrder(admin, own) {
		t.Error("admin must progress any order")
	}
}

func TestCanViewPaymentMethod(t *testing.T) {
	pm := domain.PaymentMethod{ID: 7, UserID: memberIndia.UserID}

	if !CanViewPaymentMethod(memberIndia, pm) {
		t.Error("owner must see their payment method")
	}
	if !CanViewPaymentMethod(admin, pm) {
		t.Error("admin must see any payment method")
	}
	if CanViewPaymentMethod(memberAmerica, pm) {
		t.Error("non-owner must not see a foreign payment method")
	}
}
