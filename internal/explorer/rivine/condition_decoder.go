package rivine

import (
	"fmt"

	"github.com/goodnatureofminers/tfexplorer-parser/internal/explorer/model"
	"github.com/goodnatureofminers/tfexplorer-parser/pkg/safe"
)

// DecodeCondition decodes the condition of out. unlockhashes and index supply
// the explorer-computed address that swap, multisig and custody-fee
// conditions do not carry themselves.
func DecodeCondition(out RawOutput, unlockhashes []string, index int) (model.Condition, error) {
	if out.Condition == nil {
		return model.UnlockhashCondition{Unlockhash: out.Unlockhash}, nil
	}

	cond := *out.Condition
	data := cond.Data
	computed := safe.Index(unlockhashes, index)

	switch model.ConditionType(cond.Type) {
	case model.ConditionTypeUnlockhash:
		return model.UnlockhashCondition{Unlockhash: data.Unlockhash}, nil
	case model.ConditionTypeAtomicSwap:
		return model.AtomicSwapCondition{
			Sender:          data.Sender,
			Receiver:        data.Receiver,
			ContractAddress: computed,
			HashedSecret:    data.HashedSecret,
			Timelock:        data.Timelock,
		}, nil
	case model.ConditionTypeTimelock:
		inner, ok, err := decodeTimelockInner(data, computed)
		if err != nil {
			return nil, err
		}
		if !ok {
			return model.UnlockhashCondition{Unlockhash: out.Unlockhash, Degraded: true}, nil
		}
		return model.TimelockCondition{LockTime: data.LockTime, Inner: inner}, nil
	case model.ConditionTypeMultisignature:
		return decodeMultisignature(data, computed), nil
	case model.ConditionTypeCustodyFee:
		return model.CustodyFeeCondition{VoidAddress: computed}, nil
	default:
		return nil, fmt.Errorf("%w %d", ErrUnrecognizedCondition, cond.Type)
	}
}

// decodeTimelockInner returns false when the inner condition cannot be determined.
func decodeTimelockInner(data RawConditionData, computed string) (model.Condition, bool, error) {
	// Rivine nests the inner condition in its own envelope; older explorers flatten it.
	if nested := data.Condition; nested != nil {
		switch model.ConditionType(nested.Type) {
		case model.ConditionTypeNil:
			return model.NilCondition{}, true, nil
		case model.ConditionTypeUnlockhash:
			return model.UnlockhashCondition{Unlockhash: nested.Data.Unlockhash}, true, nil
		case model.ConditionTypeMultisignature:
			return decodeMultisignature(nested.Data, computed), true, nil
		default:
			return nil, false, fmt.Errorf("timelock inner: %w %d", ErrUnrecognizedCondition, nested.Type)
		}
	}

	switch {
	case data.Unlockhashes != nil:
		return decodeMultisignature(data, computed), true, nil
	case data.Unlockhash != "":
		return model.UnlockhashCondition{Unlockhash: data.Unlockhash}, true, nil
	default:
		return nil, false, nil
	}
}

func decodeMultisignature(data RawConditionData, computed string) model.MultisignatureCondition {
	return model.MultisignatureCondition{
		Addresses:          append([]string(nil), data.Unlockhashes...),
		RequiredSignatures: data.MinimumSignatureCount,
		ComputedAddress:    computed,
	}
}

// isDegraded reports whether cond is the result of the timelock fallback.
func isDegraded(cond model.Condition) bool {
	uh, ok := cond.(model.UnlockhashCondition)
	return ok && uh.Degraded
}
