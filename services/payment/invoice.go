package payment

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"autohub/models"
	"autohub/utils"
)

var invoiceTmpl = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Tax Invoice {{.ID}}</title></head>
<body>
<h1>Tax Invoice</h1>
<p>{{.Merchant}}</p>
<table>
<tr><td>Invoice</td><td>{{.ID}}</td></tr>
<tr><td>Date</td><td>{{.Date}}</td></tr>
<tr><td>Provider</td><td>{{.Provider}}</td></tr>
<tr><td>Amount</td><td>{{.Amount}}</td></tr>
<tr><td>GST ({{.TaxRate}}%)</td><td>{{.Tax}}</td></tr>
<tr><td><strong>Total</strong></td><td><strong>{{.Total}}</strong></td></tr>
<tr><td>Status</td><td>{{.Status}}</td></tr>
{{- if .Method}}
<tr><td>Method</td><td>{{.Method}}</td></tr>
{{- end}}
{{- if .Ref}}
<tr><td>Reference</td><td>{{.Ref}}</td></tr>
{{- end}}
</table>
</body>
</html>
`))

type invoiceView struct {
	ID, Merchant, Date, Provider string
	Amount, Tax, Total           string
	TaxRate                      string
	Status, Method, Ref          string
}

// Invoice renders the tax invoice of a payment the principal owns (or any payment, for admins).
func (s *DefaultPaymentService) Invoice(ctx context.Context, principal *models.Principal, id string) (string, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", ErrPaymentNotFound
	}
	if !principal.IsAdmin() && (principal == nil || principal.UserID != p.UserID) {
		return "", ErrForbidden
	}

	providerName := p.ProviderID
	if prov, err := s.Providers.GetProviderByID(ctx, p.ProviderID); err == nil {
		providerName = prov.Name
	}

	view := invoiceView{
		ID:       p.ID,
		Merchant: merchantName,
		Date:     p.CreatedAt.Format("02 Jan 2006"),
		Provider: providerName,
		Amount:   utils.FormatINR(p.Amount),
		Tax:      utils.FormatINR(Tax(*p)),
		Total:    utils.FormatINR(Total(*p)),
		TaxRate:  fmt.Sprintf("%g", p.TaxRate),
		Status:   string(p.Status),
		Method:   string(p.Method),
		Ref:      p.Ref,
	}
	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render invoice: %w", err)
	}
	return buf.String(), nil
}
