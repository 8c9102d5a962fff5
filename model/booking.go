package model

// Booking and payment statuses are stored as the literal Arabic strings
// the data files use.
const (
	BookingStatusPending   = "قيد الانتظار"
	BookingStatusConfirmed = "مؤكد"
	BookingStatusCancelled = "ملغي"
)

const (
	PaymentFullyPaid = "مدفوع بالكامل"
	PaymentPartial   = "دفع جزئي"
	PaymentUnpaid    = "غير مدفوع"
)

type Booking struct {
	Id            int     `json:"id"`
	ClientId      int     `json:"clientId"`
	TripId        int     `json:"tripId"`
	TotalAmount   float64 `json:"totalAmount"`
	PaidAmount    float64 `json:"paidAmount"`
	BookingDate   string  `json:"bookingDate"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	Notes         string  `json:"notes,omitempty"`
}

func (b Booking) Identifier() int {
	return b.Id
}

// PaymentStatusFor derives the payment status from the paid and total
// amounts. The paid >= total check comes first, so a zero-total booking
// counts as fully paid.
func PaymentStatusFor(paidAmount, totalAmount float64) string {
	if paidAmount >= totalAmount {
		return PaymentFullyPaid
	}
	if paidAmount > 0 {
		return PaymentPartial
	}
	return PaymentUnpaid
}

func IsValidBookingStatus(status string) bool {
	switch status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}
