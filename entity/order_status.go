package entity

// OrderStatus moves through a fixed forward sequence; cancelled is an
// out-of-band absorbing state reachable from any non-terminal status.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusAssigned  OrderStatus = "assigned"
	StatusPickedUp  OrderStatus = "picked_up"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

var statusOrder = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusAssigned,
	StatusPickedUp,
	StatusDelivered,
}

func (s OrderStatus) Valid() bool {
	if s == StatusCancelled {
		return true
	}
	for _, v := range statusOrder {
		if s == v {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Next returns the following status in the delivery sequence, or "" when s
// is terminal or unknown.
func (s OrderStatus) Next() OrderStatus {
	for i, v := range statusOrder {
		if s == v && i+1 < len(statusOrder) {
			return statusOrder[i+1]
		}
	}
	return ""
}
