package model

type Client struct {
	Id               int      `json:"id"`
	Name             string   `json:"name"`
	Phone            string   `json:"phone"`
	Email            string   `json:"email"`
	PassportNumber   string   `json:"passportNumber,omitempty"`
	PassportExpiry   string   `json:"passportExpiry,omitempty"`
	Address          string   `json:"address,omitempty"`
	DateOfBirth      string   `json:"dateOfBirth,omitempty"`
	EmergencyContact string   `json:"emergencyContact,omitempty"`
	TotalBookings    int      `json:"totalBookings"`
	TotalSpent       float64  `json:"totalSpent"`
	Documents        []string `json:"documents"`
}

func (c Client) Identifier() int {
	return c.Id
}
