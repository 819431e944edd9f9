package webhook

// Delivery statuses acknowledged to the gateway.
const (
	StatusProcessed = "processed"
	StatusIgnored   = "ignored"
	StatusNotFound  = "not_found"
	StatusDuplicate = "duplicate"
)

// AckDTO is the body returned for every acknowledged delivery.
type AckDTO struct {
	Status    string `json:"status"`
	Reference string `json:"reference,omitempty"`
	Outcome   string `json:"outcome,omitempty"`
	Reason    string `json:"reason,omitempty"`
}
