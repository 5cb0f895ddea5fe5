package rivine

import (
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/tfexplorer-parser/internal/explorer/model"
	"github.com/goodnatureofminers/tfexplorer-parser/pkg/safe"
)

// parseAmount parses an explorer amount, which may be a JSON string or number.
func parseAmount(n json.Number, precision uint) (model.Currency, error) {
	return model.ParseCurrency(n.String(), precision)
}

// custodyAt returns the custody overlay aligned with index, or nil.
func custodyAt(fees []*RawCustodyFee, index int, precision uint) (*model.CustodyInfo, error) {
	return decodeCustody(safe.Index(fees, index), precision)
}

// decodeCustody converts a custody overlay; a nil overlay yields nil. Zero
// amounts are left nil.
func decodeCustody(raw *RawCustodyFee, precision uint) (*model.CustodyInfo, error) {
	if raw == nil {
		return nil, nil
	}
	fee, err := positiveAmount(raw.CustodyFee, precision)
	if err != nil {
		return nil, fmt.Errorf("custody fee: %w", err)
	}
	spendable, err := positiveAmount(raw.SpendableValue, precision)
	if err != nil {
		return nil, fmt.Errorf("spendable value: %w", err)
	}
	return &model.CustodyInfo{
		CreationTime:       raw.CreationTime,
		IsCustodyFee:       raw.IsCustodyFee,
		FeeComputationTime: raw.FeeComputationTime,
		CustodyFee:         fee,
		SpendableValue:     spendable,
	}, nil
}

func positiveAmount(n json.Number, precision uint) (*model.Currency, error) {
	if n == "" {
		return nil, nil
	}
	c, err := parseAmount(n, precision)
	if err != nil || c.IsZero() {
		return nil, err
	}
	return &c, nil
}
