package rivine

import (
	"fmt"

	"github.com/goodnatureofminers/tfexplorer-parser/internal/explorer/model"
	"github.com/goodnatureofminers/tfexplorer-parser/pkg/safe"
)

// blockContext is the block a transaction was listed in.
type blockContext struct {
	id        string
	height    uint64
	timestamp uint64
}

// assembleTransaction returns false when the version is unknown; the caller skips it.
func (p *Parser) assembleTransaction(tx RawTransaction, bc *blockContext) (model.Transaction, bool, error) {
	switch version := tx.RawTransaction.Version; version {
	case model.TransactionVersionLegacy, model.TransactionVersionStandard:
		t, err := p.assembleStandard(tx, bc)
		if err != nil {
			return nil, false, err
		}
		return t, true, nil
	case model.TransactionVersionMinterDefinition:
		t, err := p.assembleMinterDefinition(tx, bc)
		if err != nil {
			return nil, false, err
		}
		return t, true, nil
	case model.TransactionVersionCoinCreation:
		t, err := p.assembleCoinCreation(tx, bc)
		if err != nil {
			return nil, false, err
		}
		return t, true, nil
	default:
		p.observer.skippedTransaction(tx.ID, version)
		return nil, false, nil
	}
}

// assembleTransactions decodes txs, dropping unknown versions.
func (p *Parser) assembleTransactions(txs []RawTransaction, bc *blockContext) ([]model.Transaction, error) {
	result := make([]model.Transaction, 0, len(txs))
	for _, raw := range txs {
		tx, ok, err := p.assembleTransaction(raw, bc)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, tx)
		}
	}
	return result, nil
}

// transactionDrops collects the elements dropped from txs.
func transactionDrops(txs []model.Transaction) []error {
	var drops []error
	for _, tx := range txs {
		drops = append(drops, tx.Meta().DecodeErrors...)
	}
	return drops
}

func transactionMeta(tx RawTransaction, bc *blockContext) model.TransactionMeta {
	meta := model.TransactionMeta{
		ID:          tx.ID,
		Version:     tx.RawTransaction.Version,
		BlockID:     tx.Parent,
		BlockHeight: tx.Height,
		Unconfirmed: tx.Unconfirmed,
	}
	if bc != nil {
		meta.BlockID = bc.id
		meta.BlockHeight = bc.height
		meta.BlockTime = bc.timestamp
	}
	return meta
}

func (p *Parser) assembleStandard(tx RawTransaction, bc *blockContext) (*model.StandardTransaction, error) {
	meta := transactionMeta(tx, bc)
	data := tx.RawTransaction.Data

	coinOutputs, err := p.decodeOutputs(&meta, data.CoinOutputs, tx.CoinOutputIDs, tx.CoinOutputUnlockhashes, tx.CoinOutputCustodyFees, p.cfg.Precision)
	if err != nil {
		return nil, fmt.Errorf("tx %s coin outputs: %w", tx.ID, err)
	}
	coinInputs, err := p.decodeInputs(&meta, data.CoinInputs, tx.CoinInputOutputs, p.cfg.Precision)
	if err != nil {
		return nil, fmt.Errorf("tx %s coin inputs: %w", tx.ID, err)
	}
	bsOutputs, err := p.decodeOutputs(&meta, data.BlockstakeOutputs, tx.BlockstakeOutputIDs, tx.BlockstakeUnlockhashes, nil, p.cfg.BlockstakePrecision)
	if err != nil {
		return nil, fmt.Errorf("tx %s blockstake outputs: %w", tx.ID, err)
	}
	bsInputs, err := p.decodeInputs(&meta, data.BlockstakeInputs, tx.BlockstakeInputOutputs, p.cfg.BlockstakePrecision)
	if err != nil {
		return nil, fmt.Errorf("tx %s blockstake inputs: %w", tx.ID, err)
	}

	return &model.StandardTransaction{
		TransactionMeta:   meta,
		CoinInputs:        coinInputs,
		CoinOutputs:       coinOutputs,
		BlockstakeInputs:  bsInputs,
		BlockstakeOutputs: bsOutputs,
	}, nil
}

func (p *Parser) assembleMinterDefinition(tx RawTransaction, bc *blockContext) (*model.MinterDefinitionTransaction, error) {
	data := tx.RawTransaction.Data
	if data.MintFulfillment == nil {
		return nil, fmt.Errorf("tx %s: %w: mintfulfillment", tx.ID, ErrMissingField)
	}
	if data.MintCondition == nil {
		return nil, fmt.Errorf("tx %s: %w: mintcondition", tx.ID, ErrMissingField)
	}

	meta := transactionMeta(tx, bc)
	fulfillment, err := p.decodeMintFulfillment(&meta, *data.MintFulfillment)
	if err != nil {
		return nil, err
	}
	cond, err := DecodeCondition(RawOutput{Condition: data.MintCondition}, nil, 0)
	if err != nil {
		err = fmt.Errorf("tx %s mint condition: %w", tx.ID, err)
		if !isUnrecognized(err) {
			return nil, err
		}
		p.drop(&meta, err)
	}
	if isDegraded(cond) {
		p.observer.degradedTimelock("", tx.ID)
	}

	return &model.MinterDefinitionTransaction{
		TransactionMeta: meta,
		MintFulfillment: fulfillment,
		MintCondition:   cond,
	}, nil
}

func (p *Parser) assembleCoinCreation(tx RawTransaction, bc *blockContext) (*model.CoinCreationTransaction, error) {
	data := tx.RawTransaction.Data
	if data.MintFulfillment == nil {
		return nil, fmt.Errorf("tx %s: %w: mintfulfillment", tx.ID, ErrMissingField)
	}
	if data.CoinOutputs == nil {
		return nil, fmt.Errorf("tx %s: %w: coinoutputs", tx.ID, ErrMissingField)
	}

	meta := transactionMeta(tx, bc)
	fulfillment, err := p.decodeMintFulfillment(&meta, *data.MintFulfillment)
	if err != nil {
		return nil, err
	}
	outputs, err := p.decodeOutputs(&meta, data.CoinOutputs, tx.CoinOutputIDs, tx.CoinOutputUnlockhashes, tx.CoinOutputCustodyFees, p.cfg.Precision)
	if err != nil {
		return nil, fmt.Errorf("tx %s coin outputs: %w", tx.ID, err)
	}

	return &model.CoinCreationTransaction{
		TransactionMeta: meta,
		MintFulfillment: fulfillment,
		CoinOutputs:     outputs,
	}, nil
}

// decodeMintFulfillment leaves the fulfillment nil when its type is unknown.
func (p *Parser) decodeMintFulfillment(meta *model.TransactionMeta, raw RawFulfillment) (model.Fulfillment, error) {
	fulfillment, err := DecodeFulfillment(raw)
	if err == nil {
		return fulfillment, nil
	}
	err = fmt.Errorf("tx %s mint fulfillment: %w", meta.ID, err)
	if !isUnrecognized(err) {
		return nil, err
	}
	p.drop(meta, err)
	return nil, nil
}

// drop records an element left out of the transaction described by meta.
func (p *Parser) drop(meta *model.TransactionMeta, err error) {
	p.observer.droppedElement(meta.ID, err)
	meta.DecodeErrors = append(meta.DecodeErrors, err)
}

// decodeOutputs decodes outputs aligned by index with their ids, unlockhashes
// and custody overlays. Spent is left unset. Outputs with an unknown condition
// type are dropped and recorded on meta.
func (p *Parser) decodeOutputs(meta *model.TransactionMeta, outputs []RawOutput, ids, unlockhashes []string, custody []*RawCustodyFee, precision uint) ([]model.Output, error) {
	result := make([]model.Output, 0, len(outputs))
	for idx, raw := range outputs {
		id := safe.Index(ids, idx)
		value, err := parseAmount(raw.Value, precision)
		if err != nil {
			return nil, fmt.Errorf("output %d value: %w", idx, err)
		}
		cond, err := DecodeCondition(raw, unlockhashes, idx)
		if isUnrecognized(err) {
			p.drop(meta, outputConditionError(meta.ID, id, err))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("output %d (%s) condition: %w", idx, id, err)
		}
		if isDegraded(cond) {
			p.observer.degradedTimelock(id, meta.ID)
		}
		info, err := custodyAt(custody, idx, precision)
		if err != nil {
			return nil, fmt.Errorf("output %d (%s): %w", idx, id, err)
		}
		result = append(result, model.Output{
			ID:          id,
			Value:       value,
			Condition:   cond,
			BlockHeight: meta.BlockHeight,
			BlockID:     meta.BlockID,
			TxID:        meta.ID,
			Unlockhash:  safe.Index(unlockhashes, idx),
			Custody:     info,
		})
	}
	return result, nil
}

// outputConditionError names an output dropped for its condition. The
// reconciler uses the same message so both drops merge into one.
func outputConditionError(txID, outputID string, err error) error {
	return fmt.Errorf("tx %s output %s condition: %w", txID, outputID, err)
}

// decodeInputs decodes inputs, attaching the parent output reported at the
// same index of parents when present. An input with an unknown fulfillment
// type is dropped; a parent with an unknown condition type is left unset.
func (p *Parser) decodeInputs(meta *model.TransactionMeta, inputs []RawInput, parents []RawOutput, precision uint) ([]model.Input, error) {
	result := make([]model.Input, 0, len(inputs))
	for idx, raw := range inputs {
		fulfillment, err := DecodeInputFulfillment(raw)
		if isUnrecognized(err) {
			p.drop(meta, fmt.Errorf("tx %s input %s fulfillment: %w", meta.ID, raw.ParentID, err))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("input %d (%s) fulfillment: %w", idx, raw.ParentID, err)
		}
		in := model.Input{
			ParentID:    raw.ParentID,
			Fulfillment: fulfillment,
			TxID:        meta.ID,
		}
		if idx < len(parents) {
			parent, custody, err := p.decodeParent(raw.ParentID, parents[idx], precision)
			switch {
			case isUnrecognized(err):
				p.drop(meta, fmt.Errorf("tx %s input %s parent: %w", meta.ID, raw.ParentID, err))
			case err != nil:
				return nil, fmt.Errorf("input %d (%s) parent: %w", idx, raw.ParentID, err)
			default:
				in.ParentOutput = parent
				in.Custody = custody
			}
		}
		result = append(result, in)
	}
	return result, nil
}

func (p *Parser) decodeParent(parentID string, raw RawOutput, precision uint) (*model.Output, *model.CustodyInfo, error) {
	value, err := parseAmount(raw.Value, precision)
	if err != nil {
		return nil, nil, fmt.Errorf("value: %w", err)
	}
	cond, err := DecodeCondition(raw, []string{raw.Unlockhash}, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("condition: %w", err)
	}
	custody, err := decodeCustody(raw.Custody, precision)
	if err != nil {
		return nil, nil, err
	}
	return &model.Output{
		ID:         parentID,
		Value:      value,
		Condition:  cond,
		Unlockhash: raw.Unlockhash,
	}, custody, nil
}
