package model

// Sale statuses.
const (
	SaleCompleted = "Completed"
	SalePending   = "Pending"
	SaleCancelled = "Cancelled"
)

type Sale struct {
	ID            string `db:"id" json:"id"`
	StoneID       string `db:"stone_id" json:"stoneId"`
	ClientID      string `db:"client_id" json:"clientId"`
	Carat         string `db:"carat" json:"carat"`
	TotalAmount   string `db:"total_amount" json:"totalAmount"`
	SaleDate      string `db:"sale_date" json:"saleDate"`
	Status        string `db:"status" json:"status"`
	PaymentMethod string `db:"payment_method" json:"paymentMethod"`
	Notes         string `db:"notes" json:"notes"`
	CreatedAt     string `db:"created_at" json:"createdAt"`
}

// SaleView is a sale row with the referenced names resolved for display.
type SaleView struct {
	Sale
	ClientName string `json:"clientName"`
	StoneType  string `json:"stoneType"`
	StoneSKU   string `json:"stoneSku"`
}

// Expense is an outgoing payment tracked on the finance page.
type Expense struct {
	ID          string `db:"id" json:"id"`
	Category    string `db:"category" json:"category"`
	Amount      string `db:"amount" json:"amount"`
	ExpenseDate string `db:"expense_date" json:"expenseDate"`
	Description string `db:"description" json:"description"`
	CreatedAt   string `db:"created_at" json:"createdAt"`
}

// Invoice is the document model rendered for a single sale.
type Invoice struct {
	Number       string
	IssueDate    string
	CompanyName  string
	Sale         Sale
	Client       Client
	Stone        InventoryItem
	ClientName   string
	StoneType    string
	Carat        string
	Subtotal     string
	Tax          string
	TaxRatePct   string
	Total        string
	Certificates []Certification
}
