package common

import "fmt"

// GetInvoicesBucket is the default bucket for invoice PDFs of the current project.
func GetInvoicesBucket() string {
	if Production {
		return "goldleaf-storefront-invoices"
	}

	return fmt.Sprintf("%s-invoices", ProjectID)
}
