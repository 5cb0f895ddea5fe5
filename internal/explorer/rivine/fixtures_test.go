package rivine

import (
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"
)

const (
	addrAlice = "01alice"
	addrBob   = "01bob"
)

func hash(c byte) string {
	return strings.Repeat(string(c), 64)
}

func unlockhashOutput(value, address string) RawOutput {
	return RawOutput{
		Value:     json.Number(value),
		Condition: &RawCondition{Type: 1, Data: RawConditionData{Unlockhash: address}},
	}
}

func signedInput(parentID string) RawInput {
	return RawInput{
		ParentID: parentID,
		Fulfillment: &RawFulfillment{
			Type: 1,
			Data: RawFulfillmentData{PublicKey: "ed25519:00", Signature: "00"},
		},
	}
}

// payTx pays value to address in a single coin output with id outputID.
func payTx(id string, height uint64, outputID, value, address string) RawTransaction {
	return RawTransaction{
		ID:     id,
		Height: height,
		RawTransaction: RawTransactionBody{
			Version: 1,
			Data: RawTransactionData{
				CoinOutputs: []RawOutput{unlockhashOutput(value, address)},
			},
		},
		CoinOutputIDs:          []string{outputID},
		CoinOutputUnlockhashes: []string{address},
	}
}

// spendTx spends parentIDs as coin inputs.
func spendTx(id string, height uint64, parentIDs ...string) RawTransaction {
	tx := RawTransaction{
		ID:             id,
		Height:         height,
		RawTransaction: RawTransactionBody{Version: 1},
	}
	for _, p := range parentIDs {
		tx.RawTransaction.Data.CoinInputs = append(tx.RawTransaction.Data.CoinInputs, signedInput(p))
	}
	return tx
}

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser(DefaultConfig(), zap.NewNop(), nil)
	if err != nil {
		t.Fatalf("NewParser returned error: %v", err)
	}
	return p
}
