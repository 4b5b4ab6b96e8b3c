package shared

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Identifiers are handles into owning registries. Holding one never keeps
// the referenced customer, order or party alive.

// CustomerID identifies a customer for the lifetime of a service run
type CustomerID struct {
	value string
}

// OrderID identifies an order
type OrderID struct {
	value string
}

// PartyID identifies a group of customers that arrive and leave together
type PartyID struct {
	value string
}

func NewCustomerID() CustomerID { return CustomerID{value: uuid.New().String()} }
func NewOrderID() OrderID { return OrderID{value: uuid.New().String()} }
func NewPartyID() PartyID { return PartyID{value: uuid.New().String()} }

// ParseCustomerID accepts any uuid string
func ParseCustomerID(s string) (CustomerID, error) {
	v, err := parseUUID("customer_id", s)
	return CustomerID{value: v}, err
}

// ParseOrderID accepts any uuid string
func ParseOrderID(s string) (OrderID, error) {
	v, err := parseUUID("order_id", s)
	return OrderID{value: v}, err
}

// ParsePartyID accepts any uuid string
func ParsePartyID(s string) (PartyID, error) {
	v, err := parseUUID("party_id", s)
	return PartyID{value: v}, err
}

func parseUUID(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%s cannot be empty", field)
	}
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("invalid %s format: %w", field, err)
	}
	return strings.ToLower(s), nil
}

func (c CustomerID) String() string { return c.value }
func (c CustomerID) IsZero() bool { return c.value == "" }

// Short returns the first 8 characters, for log lines
func (c CustomerID) Short() string { return short(c.value) }

func (o OrderID) String() string { return o.value }
func (o OrderID) IsZero() bool { return o.value == "" }
func (o OrderID) Short() string { return short(o.value) }

func (p PartyID) String() string { return p.value }
func (p PartyID) IsZero() bool { return p.value == "" }
func (p PartyID) Short() string { return short(p.value) }

func short(v string) string {
	if len(v) <= 8 {
		return v
	}
	return v[:8]
}
