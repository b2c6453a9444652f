package models

import "strings"

// Role is an account role. Request bodies are checked against this set
// before anything is written.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleUser     Role = "user"
	RoleChef     Role = "chef"
	RoleAdmin    Role = "admin"
)

var roles = []Role{RoleCustomer, RoleUser, RoleChef, RoleAdmin}

func ParseRole(s string) (Role, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, r := range roles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

func ParseRequestStatus(s string) (RequestStatus, bool) {
	switch st := RequestStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case RequestPending, RequestApproved, RequestRejected:
		return st, true
	}
	return "", false
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAccepted  OrderStatus = "accepted"
	OrderCancelled OrderStatus = "cancelled"
	OrderDelivered OrderStatus = "delivered"
)

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch st := OrderStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case OrderPending, OrderAccepted, OrderCancelled, OrderDelivered:
		return st, true
	}
	return "", false
}
