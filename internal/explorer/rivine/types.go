package rivine

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records parser outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveSkipped(reason string)
	}
)

// Reasons passed to Metrics.ObserveSkipped.
const (
	SkipUnknownTransactionVersion = "unknown_transaction_version"
	SkipTimelockFallback          = "timelock_fallback"
	SkipUnrecognizedCondition     = "unrecognized_condition"
	SkipUnrecognizedFulfillment   = "unrecognized_fulfillment"
)
