package rivine

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/tfexplorer-parser/internal/explorer/model"
)

// lookupCoinOutput finds the coin output id among the response transactions,
// falling back to the block payouts, together with the input spending it.
func (p *Parser) lookupCoinOutput(res HashResponse, id string) (*model.CoinOutputInfo, error) {
	txs, err := p.assembleTransactions(res.Transactions, nil)
	if err != nil {
		return nil, fmt.Errorf("coin output %s: %w", id, err)
	}

	var output *model.Output
	var input *model.Input
	for _, tx := range txs {
		var outputs []model.Output
		var inputs []model.Input
		switch t := tx.(type) {
		case *model.StandardTransaction:
			outputs, inputs = t.CoinOutputs, t.CoinInputs
		case *model.CoinCreationTransaction:
			outputs = t.CoinOutputs
		}
		if output == nil {
			output = findOutput(outputs, id)
		}
		if input == nil {
			input = findInput(inputs, id)
		}
	}

	if output == nil {
		output, err = p.findPayout(res.Blocks, id)
		if err != nil {
			return nil, fmt.Errorf("coin output %s: %w", id, err)
		}
	}
	drops := transactionDrops(txs)
	if output == nil {
		return nil, fmt.Errorf("coin output %s: %w", id, notFound(drops))
	}
	if input != nil {
		output.Spent = true
	}
	return &model.CoinOutputInfo{Output: output, Input: input, DecodeErrors: drops}, nil
}

// lookupBlockstakeOutput finds the blockstake output id and the input spending it.
func (p *Parser) lookupBlockstakeOutput(res HashResponse, id string) (*model.BlockstakeOutputInfo, error) {
	txs, err := p.assembleTransactions(res.Transactions, nil)
	if err != nil {
		return nil, fmt.Errorf("blockstake output %s: %w", id, err)
	}

	var output *model.Output
	var input *model.Input
	for _, tx := range txs {
		t, ok := tx.(*model.StandardTransaction)
		if !ok {
			continue
		}
		if output == nil {
			output = findOutput(t.BlockstakeOutputs, id)
		}
		if input == nil {
			input = findInput(t.BlockstakeInputs, id)
		}
	}

	drops := transactionDrops(txs)
	if output == nil {
		return nil, fmt.Errorf("blockstake output %s: %w", id, notFound(drops))
	}
	if input != nil {
		output.Spent = true
	}
	return &model.BlockstakeOutputInfo{Output: output, Input: input, DecodeErrors: drops}, nil
}

// notFound joins ErrOutputNotFound with the drops that may have hidden the output.
func notFound(drops []error) error {
	if len(drops) == 0 {
		return ErrOutputNotFound
	}
	return errors.Join(append([]error{ErrOutputNotFound}, drops...)...)
}

// findPayout synthesizes an output from the block payout with the given id.
func (p *Parser) findPayout(blocks []RawBlock, id string) (*model.Output, error) {
	for _, block := range blocks {
		for idx, payoutID := range block.MinerPayoutIDs {
			if payoutID != id || idx >= len(block.RawBlock.MinerPayouts) {
				continue
			}
			mp := block.RawBlock.MinerPayouts[idx]
			value, err := parseAmount(mp.Value, p.cfg.Precision)
			if err != nil {
				return nil, fmt.Errorf("block %s miner payout %d value: %w", block.BlockID, idx, err)
			}
			custody, err := custodyAt(block.MinerPayoutCustodyFees, idx, p.cfg.Precision)
			if err != nil {
				return nil, fmt.Errorf("block %s miner payout %d: %w", block.BlockID, idx, err)
			}
			return &model.Output{
				ID:                   id,
				Value:                value,
				Condition:            model.UnlockhashCondition{Unlockhash: mp.Unlockhash},
				BlockHeight:          block.Height,
				BlockID:              block.BlockID,
				Unlockhash:           mp.Unlockhash,
				IsBlockCreatorReward: true,
				Custody:              custody,
			}, nil
		}
	}
	return nil, nil
}

func findOutput(outputs []model.Output, id string) *model.Output {
	for i := range outputs {
		if outputs[i].ID == id {
			out := outputs[i]
			return &out
		}
	}
	return nil
}

func findInput(inputs []model.Input, parentID string) *model.Input {
	for i := range inputs {
		if inputs[i].ParentID == parentID {
			in := inputs[i]
			return &in
		}
	}
	return nil
}
