package model

// InventoryItem is a stone (or lot of stones) held in stock.
// Numeric fields keep the text as entered; see money.Parse.
type InventoryItem struct {
	ID            string `db:"id" json:"id"`
	SKU           string `db:"sku" json:"sku"`
	Type          string `db:"type" json:"type"`
	Carat         string `db:"carat" json:"carat"`
	Quantity      string `db:"quantity" json:"quantity"`
	PricePerCarat string `db:"price_per_carat" json:"pricePerCarat"`
	SellingPrice  string `db:"selling_price" json:"sellingPrice"`
	Certified     bool   `db:"certified" json:"certified"`
	Origin        string `db:"origin" json:"origin"`
	SupplierID    string `db:"supplier_id" json:"supplierId"`
	Description   string `db:"description" json:"description"`
	CreatedAt     string `db:"created_at" json:"createdAt"`
}

// Certification is a lab certificate attached to a stone.
type Certification struct {
	ID                string `db:"id" json:"id"`
	StoneID           string `db:"stone_id" json:"stoneId"`
	CertificateNumber string `db:"certificate_number" json:"certificateNumber"`
	Lab               string `db:"lab" json:"lab"`
	IssueDate         string `db:"issue_date" json:"issueDate"`
	Grade             string `db:"grade" json:"grade"`
	DocumentKey       string `db:"document_key" json:"documentKey"`
	CreatedAt         string `db:"created_at" json:"createdAt"`
}
