package rivine

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

// observer reports decode events that do not fail a decode.
type observer struct {
	logger  *zap.Logger
	metrics Metrics
}

func newObserver(logger *zap.Logger, metrics Metrics) observer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return observer{logger: logger, metrics: metrics}
}

func (o observer) skippedTransaction(txID string, version int) {
	o.logger.Debug("skip transaction with unknown version", zap.String("tx_id", txID), zap.Int("version", version))
	if o.metrics != nil {
		o.metrics.ObserveSkipped(SkipUnknownTransactionVersion)
	}
}

func (o observer) degradedTimelock(outputID, txID string) {
	o.logger.Warn("timelock condition without inner unlockhash, lock time dropped",
		zap.String("output_id", outputID), zap.String("tx_id", txID))
	if o.metrics != nil {
		o.metrics.ObserveSkipped(SkipTimelockFallback)
	}
}

func (o observer) droppedElement(txID string, err error) {
	o.logger.Warn("drop element with unrecognized type", zap.String("tx_id", txID), zap.Error(err))
	if o.metrics == nil {
		return
	}
	reason := SkipUnrecognizedCondition
	if errors.Is(err, ErrUnrecognizedFulfillment) {
		reason = SkipUnrecognizedFulfillment
	}
	o.metrics.ObserveSkipped(reason)
}

func (o observer) operation(operation string, err error, started time.Time) {
	if o.metrics != nil {
		o.metrics.Observe(operation, err, started)
	}
}
