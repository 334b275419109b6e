package entities

import "time"

type Order struct {
	ID            int64
	TrackingCode  string
	CompanyID     int64
	SenderName    string
	SenderPhone   string
	SenderAddress string
	SenderEmail   string

	ReceiverName    string
	ReceiverPhone   string
	ReceiverAddress string

	ParcelType    ParcelType
	WeightKg      float64
	DeclaredValue float64

	ShippingFee   float64
	CodAmount     float64
	PaymentMethod PaymentMethodType
	PaymentStatus PaymentStatusType

	Status OrderStatusType

	DriverID  *int64
	VehicleID *int64
	RouteID   *int64

	PickedUpAt  *time.Time
	DeliveredAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderStatusType string

const (
	OrderPendingPickup  OrderStatusType = "pending_pickup"
	OrderPickedUp       OrderStatusType = "picked_up"
	OrderInTransit      OrderStatusType = "in_transit"
	OrderOutForDelivery OrderStatusType = "out_for_delivery"
	OrderDelivered      OrderStatusType = "delivered"
	OrderReturned       OrderStatusType = "returned"
	OrderCancelled      OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// orderTransitions is the closed table of allowed next statuses.
// Terminal statuses have no entry: no skipping, no reverse transitions.
var orderTransitions = map[OrderStatusType][]OrderStatusType{
	OrderPendingPickup:  {OrderPickedUp, OrderCancelled},
	OrderPickedUp:       {OrderInTransit, OrderCancelled},
	OrderInTransit:      {OrderOutForDelivery, OrderReturned},
	OrderOutForDelivery: {OrderDelivered, OrderReturned},
}

func (s OrderStatusType) CanTransitionTo(next OrderStatusType) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatusType) IsTerminal() bool {
	_, ok := orderTransitions[s]
	return !ok && s.IsValid()
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderPendingPickup, OrderPickedUp, OrderInTransit,
		OrderOutForDelivery, OrderDelivered, OrderReturned, OrderCancelled:
		return true
	default:
		return false
	}
}

type ParcelType string

const (
	ParcelDocument ParcelType = "document"
	ParcelStandard ParcelType = "standard"
	ParcelFragile  ParcelType = "fragile"
	ParcelFrozen   ParcelType = "frozen"
)

const DefaultParcelType = ParcelStandard

func (t ParcelType) String() string {
	return string(t)
}

type PaymentMethodType string

const (
	PaymentCash         PaymentMethodType = "cash"
	PaymentBankTransfer PaymentMethodType = "bank_transfer"
	PaymentEWallet      PaymentMethodType = "e_wallet"
)

func (t PaymentMethodType) String() string {
	return string(t)
}

type PaymentStatusType string

const (
	PaymentUnpaid   PaymentStatusType = "unpaid"
	PaymentPaid     PaymentStatusType = "paid"
	PaymentRefunded PaymentStatusType = "refunded"
)

func (t PaymentStatusType) String() string {
	return string(t)
}

type OrderModify struct {
	ID            *int64
	TrackingCode  *string
	CompanyID     *int64
	SenderName    *string
	SenderPhone   *string
	SenderAddress *string
	SenderEmail   *string

	ReceiverName    *string
	ReceiverPhone   *string
	ReceiverAddress *string

	ParcelType    *ParcelType
	WeightKg      *float64
	DeclaredValue *float64

	ShippingFee   *float64
	CodAmount     *float64
	PaymentMethod *PaymentMethodType
	PaymentStatus *PaymentStatusType

	Status *OrderStatusType

	DriverID  *int64
	VehicleID *int64
	RouteID   *int64

	PickedUpAt  *time.Time
	DeliveredAt *time.Time
}

// OrderStatusHistory is an append-only log record written on every transition.
type OrderStatusHistory struct {
	ID        int64
	OrderID   int64
	OldStatus OrderStatusType
	NewStatus OrderStatusType
	ChangedBy int64
	Notes     string
	PhotoURL  string
	Location  string
	CreatedAt time.Time
}

// OrderStatusEvent is the payload published to the event bus after a
// transition commits.
type OrderStatusEvent struct {
	OrderID      int64           `json:"order_id"`
	TrackingCode string          `json:"tracking_code"`
	OldStatus    OrderStatusType `json:"old_status"`
	NewStatus    OrderStatusType `json:"new_status"`
	ChangedBy    int64           `json:"changed_by"`
	OccurredAt   time.Time       `json:"occurred_at"`
}

// StatusUpdate carries the caller's input for a single status transition.
type StatusUpdate struct {
	OrderID   int64
	NewStatus OrderStatusType
	ChangedBy int64
	Notes     string
	PhotoURL  string
	Location  string
}
