package payments

import "context"

// StatusSucceeded is the processor state that marks a transaction complete.
// Any other state leaves the order unpaid.
const StatusSucceeded = "succeeded"

// Intent is the processor-neutral view of a payment transaction.
type Intent struct {
	Id           string
	ClientSecret string
	Status       string
	Amount       int64
}

// Processor creates and inspects payment transactions with an external
// provider. Amounts are in minor currency units (cents).
type Processor interface {
	CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*Intent, error)
	GetIntent(ctx context.Context, id string) (*Intent, error)
}
