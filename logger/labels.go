package logger

// Label keys attached to request log entries.
const (
	LabelOrderID       = "order_id"
	LabelInvoiceName   = "invoice_name"
	LabelUploadTarget  = "upload_target"
	LabelInvoiceSource = "invoice_source"
)
