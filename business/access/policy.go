// Package access holds the role/country authorization policy. Every service
// consults these pure functions after it has established that the target
// resource exists, so a nonexistent id is always reported as not-found and
// never as forbidden.
package access

import (
	"foodcourt/domain"
)

// Actor is the authenticated principal, built by the auth middleware from
// the database row, and passed explicitly into every service call.
type Actor struct {
	UserID  uint
	Role    domain.Role
	Country domain.Country
}

func (a Actor) IsAdmin() bool {
	return a.Role == domain.RoleAdmin
}

func (a Actor) IsManager() bool {
	return a.Role == domain.RoleManager
}

func (a Actor) IsMember() bool {
	return a.Role == domain.RoleMember
}

// CanAccessCountry reports whether the actor may touch a resource tagged
// with the given country. ADMIN is unrestricted; everyone else is confined
// to their own country.
func CanAccessCountry(actor Actor, country domain.Country) bool {
	if actor.IsAdmin() {
		return true
	}

	return actor.Country == country
}

// CanManageCatalog reports whether the actor may mutate restaurants or menu
// items at all. Country confinement for managers is checked separately with
// CanAccessCountry once the resource has been loaded.
func CanManageCatalog(actor Actor) bool {
	return actor.IsAdmin() || actor.IsManager()
}

// CanViewOrder: ADMIN sees all, MANAGER sees own-country orders, MEMBER
// sees only their own.
func CanViewOrder(actor Actor, order domain.Order) bool {
	switch {
	case actor.IsAdmin():
		return true
	case actor.IsManager():
		return actor.Country == order.Country
	default:
		return actor.UserID == order.UserID
	}
}

// CanProgressOrder reports whether the actor may cancel an order or change
// its status. Members never can, not even on their own orders.
func CanProgressOrder(actor Actor, order domain.Order) bool {
	if actor.IsMember() {
		return false
	}

	return CanAccessCountry(actor, order.Country)
}

// CanViewPaymentMethod: payment methods are personal; only the owner or an
// ADMIN may read one.
func CanViewPaymentMethod(actor Actor, pm domain.PaymentMethod) bool {
	return actor.IsAdmin() || actor.UserID == pm.UserID
}
