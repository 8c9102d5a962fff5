package model

// Trip statuses are stored as the literal Arabic strings the data files use.
const (
	TripStatusPlanning  = "قيد التخطيط"
	TripStatusConfirmed = "مؤكد"
	TripStatusCancelled = "ملغي"
)

const TripImagePlaceholder = "/placeholder.svg?height=200&width=300"

type Trip struct {
	Id          int     `json:"id"`
	Name        string  `json:"name"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity"`
	Booked      int     `json:"booked"`
	Status      string  `json:"status"`
	Image       string  `json:"image"`
}

func (t Trip) Identifier() int {
	return t.Id
}
