package order

import "time"

type OrderDB struct {
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

	ParcelType    string
	WeightKg      float64
	DeclaredValue float64

	ShippingFee   float64
	CodAmount     float64
	PaymentMethod string
	PaymentStatus string

	Status string

	DriverID  *int64
	VehicleID *int64
	RouteID   *int64

	PickedUpAt  *time.Time
	DeliveredAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderModifyDB struct {
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

	ParcelType    *string
	WeightKg      *float64
	DeclaredValue *float64

	ShippingFee   *float64
	CodAmount     *float64
	PaymentMethod *string
	PaymentStatus *string

	Status *string

	DriverID  *int64
	VehicleID *int64
	RouteID   *int64

	PickedUpAt  *time.Time
	DeliveredAt *time.Time
}

type StatusHistoryDB struct {
	ID        int64
	OrderID   int64
	OldStatus *string
	NewStatus string
	ChangedBy int64
	Notes     string
	PhotoURL  string
	Location  string
	CreatedAt time.Time
}
