package domain

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleMember  Role = "MEMBER"
)

var validRoles = map[Role]bool{
	RoleAdmin:   true,
	RoleManager: true,
	RoleMember:  true,
}

func (r Role) Valid() bool {
	return validRoles[r]
}

type Country string

const (
	CountryIndia   Country = "INDIA"
	CountryAmerica Country = "AMERICA"
)

var validCountries = map[Country]bool{
	CountryIndia:   true,
	CountryAmerica: true,
}

func (c Country) Valid() bool {
	return validCountries[c]
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	// OrderPreparing is modeled but no operation transitions into it.
	OrderPreparing OrderStatus = "PREPARING"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// assignableStatuses are the values accepted by the status update operation.
// PREPARING is deliberately absent, matching the observed behavior.
var assignableStatuses = map[OrderStatus]bool{
	OrderPending:   true,
	OrderConfirmed: true,
	OrderDelivered: true,
	OrderCancelled: true,
}

func (s OrderStatus) Assignable() bool {
	return assignableStatuses[s]
}

type PaymentMethodType string

const (
	PaymentCreditCard PaymentMethodType = "CREDIT_CARD"
	PaymentDebitCard  PaymentMethodType = "DEBIT_CARD"
	PaymentUPI        PaymentMethodType = "UPI"
	PaymentWallet     PaymentMethodType = "WALLET"
)

var validPaymentTypes = map[PaymentMethodType]bool{
	PaymentCreditCard: true,
	PaymentDebitCard:  true,
	PaymentUPI:        true,
	PaymentWallet:     true,
}

func (t PaymentMethodType) Valid() bool {
	return validPaymentTypes[t]
}
