package model

// Client types offered in the client form.
const (
	ClientJeweler    = "Jeweler"
	ClientAstrologer = "Astrologer"
	ClientTemple     = "Temple"
	ClientCollector  = "Collector"
	ClientRetailer   = "Retailer"
	ClientWholesaler = "Wholesaler"
)

// ClientTypes lists the accepted client types.
var ClientTypes = []string{
	ClientJeweler, ClientAstrologer, ClientTemple,
	ClientCollector, ClientRetailer, ClientWholesaler,
}

type Client struct {
	ID         string `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	ClientType string `db:"client_type" json:"clientType"`
	City       string `db:"city" json:"city"`
	Phone      string `db:"phone" json:"phone"`
	Email      string `db:"email" json:"email"`
	Address    string `db:"address" json:"address"`
	CreatedAt  string `db:"created_at" json:"createdAt"`
}

type Supplier struct {
	ID            string `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	Country       string `db:"country" json:"country"`
	ContactPerson string `db:"contact_person" json:"contactPerson"`
	Phone         string `db:"phone" json:"phone"`
	Email         string `db:"email" json:"email"`
	Specialty     string `db:"specialty" json:"specialty"`
	CreatedAt     string `db:"created_at" json:"createdAt"`
}

// Consultation is an advisory session booked by a client.
type Consultation struct {
	ID               string `db:"id" json:"id"`
	ClientID         string `db:"client_id" json:"clientId"`
	ConsultationDate string `db:"consultation_date" json:"consultationDate"`
	ConsultationType string `db:"consultation_type" json:"consultationType"`
	Fee              string `db:"fee" json:"fee"`
	Status           string `db:"status" json:"status"`
	Notes            string `db:"notes" json:"notes"`
	CreatedAt        string `db:"created_at" json:"createdAt"`
}
