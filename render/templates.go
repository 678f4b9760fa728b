package render

const baseStyle = `{{define "style"}}<style>
body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; color: #222; margin: 24px; }
h1 { font-size: 20px; margin: 0 0 4px; }
table { width: 100%; border-collapse: collapse; margin-top: 16px; }
th, td { border: 1px solid #ccc; padding: 6px 8px; text-align: left; }
th { background: #eee; }
td.num, th.num { text-align: right; }
.muted { color: #777; }
.totals td { font-weight: bold; }
.low { color: #b00020; }
</style>{{end}}`

const invoiceHTML = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>Invoice {{.Number}}</title>{{template "style"}}</head>
<body>
<h1>{{.CompanyName}}</h1>
<p class="muted">Invoice <strong>{{.Number}}</strong> &middot; issued {{.IssueDate}}</p>

<table>
<tr><th>Billed to</th><th>Sale</th></tr>
<tr>
<td>{{.ClientName}}{{with .Client.Address}}<br>{{.}}{{end}}{{with .Client.City}}<br>{{.}}{{end}}{{with .Client.Email}}<br>{{.}}{{end}}</td>
<td>Date: {{.Sale.SaleDate}}<br>Status: {{.Sale.Status}}{{with .Sale.PaymentMethod}}<br>Payment: {{.}}{{end}}</td>
</tr>
</table>

<table>
<tr><th>SKU</th><th>Stone</th><th>Origin</th><th class="num">Carat</th><th class="num">Amount</th></tr>
<tr>
<td>{{.Stone.SKU}}</td><td>{{.StoneType}}</td><td>{{.Stone.Origin}}</td>
<td class="num">{{.Carat}}</td><td class="num">{{.Subtotal}}</td>
</tr>
<tr><td colspan="4" class="num">Subtotal</td><td class="num">{{.Subtotal}}</td></tr>
<tr><td colspan="4" class="num">Tax ({{.TaxRatePct}}%)</td><td class="num">{{.Tax}}</td></tr>
<tr class="totals"><td colspan="4" class="num">Total</td><td class="num">{{.Total}}</td></tr>
</table>

{{if .Certificates}}
<table>
<tr><th>Certificate</th><th>Lab</th><th>Issued</th><th>Grade</th></tr>
{{range .Certificates}}<tr><td>{{.CertificateNumber}}</td><td>{{.Lab}}</td><td>{{.IssueDate}}</td><td>{{.Grade}}</td></tr>
{{end}}</table>
{{end}}
{{with .Sale.Notes}}<p class="muted">{{.}}</p>{{end}}
</body></html>`

const stockHTML = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>Stock report</title>{{template "style"}}</head>
<body>
<h1>{{.CompanyName}} stock report</h1>
<p class="muted">Generated {{.GeneratedAt}}</p>

<table>
<tr><th>Type</th><th class="num">Items</th><th class="num">Quantity</th><th class="num">Carat</th><th class="num">Value</th><th class="num">Low stock</th></tr>
{{range .Rows}}<tr>
<td>{{.Type}}</td><td class="num">{{.Items}}</td><td class="num">{{qty .Quantity}}</td>
<td class="num">{{qty .TotalCarat}}</td><td class="num">{{money .Value}}</td>
<td class="num{{if .LowStock}} low{{end}}">{{.LowStock}}</td>
</tr>
{{else}}<tr><td colspan="6">No stock recorded.</td></tr>
{{end}}<tr class="totals"><td>Total</td><td class="num">{{.TotalItems}}</td><td class="num">{{qty .TotalQty}}</td><td></td><td class="num">{{money .TotalValue}}</td><td></td></tr>
</table>

{{if .Items}}
<table>
<tr><th>#</th><th>SKU</th><th>Type</th><th class="num">Carat</th><th class="num">Qty</th><th class="num">Price/ct</th><th>Certified</th></tr>
{{range $i, $it := .Items}}<tr>
<td>{{inc $i}}</td><td>{{$it.SKU}}</td><td>{{$it.Type}}</td><td class="num">{{$it.Carat}}</td>
<td class="num">{{$it.Quantity}}</td><td class="num">{{money (num $it.PricePerCarat)}}</td>
<td>{{if $it.Certified}}Yes{{else}}No{{end}}</td>
</tr>
{{end}}</table>
{{end}}
</body></html>`
