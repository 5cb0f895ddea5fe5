package rivine

import (
	"fmt"

	"github.com/goodnatureofminers/tfexplorer-parser/internal/explorer/model"
	"github.com/goodnatureofminers/tfexplorer-parser/pkg/safe"
	"go.uber.org/zap"
)

// Reconciliation is the spent/unspent partition of one address' outputs.
type Reconciliation struct {
	Unspent   []model.Output
	Spent     []model.Output
	Balance   model.Currency
	LastSpent model.LastSpent
	// Dropped lists candidates left out because their condition type is unknown.
	Dropped []error
}

// Outputs lists unspent outputs followed by spent ones.
func (r Reconciliation) Outputs() []model.Output {
	out := make([]model.Output, 0, len(r.Unspent)+len(r.Spent))
	out = append(out, r.Unspent...)
	return append(out, r.Spent...)
}

// Reconciler decides which outputs of an address are spent within the
// transactions of one response. The transactions are trusted to be complete
// for that address.
type Reconciler struct {
	precision           uint
	blockstakePrecision uint
	observer            observer
}

// NewReconciler constructs a Reconciler scaling coins and blockstakes with the given precisions.
func NewReconciler(precision, blockstakePrecision uint, logger *zap.Logger, metrics Metrics) *Reconciler {
	return &Reconciler{
		precision:           precision,
		blockstakePrecision: blockstakePrecision,
		observer:            newObserver(logger, metrics),
	}
}

// CoinOutputs reconciles the coin outputs paid to address.
func (r *Reconciler) CoinOutputs(address string, txs []RawTransaction) (Reconciliation, error) {
	var candidates []model.Output
	var dropped []error
	for _, tx := range txs {
		outputs := tx.RawTransaction.Data.CoinOutputs
		for idx, uh := range tx.CoinOutputUnlockhashes {
			if uh != address || idx >= len(outputs) {
				continue
			}
			out, err := r.candidate(tx, outputs[idx], tx.CoinOutputUnlockhashes, tx.CoinOutputIDs, idx, r.precision)
			if isUnrecognized(err) {
				r.observer.droppedElement(tx.ID, err)
				dropped = append(dropped, err)
				continue
			}
			if err != nil {
				return Reconciliation{}, err
			}
			custody, err := custodyAt(tx.CoinOutputCustodyFees, idx, r.precision)
			if err != nil {
				return Reconciliation{}, fmt.Errorf("tx %s coin output %d: %w", tx.ID, idx, err)
			}
			out.Custody = custody
			candidates = append(candidates, out)
		}
	}
	return settle(candidates, dropped, txs, coinInputs, r.precision)
}

// BlockstakeOutputs reconciles the blockstake outputs paid to address.
func (r *Reconciler) BlockstakeOutputs(address string, txs []RawTransaction) (Reconciliation, error) {
	var candidates []model.Output
	var dropped []error
	for _, tx := range txs {
		outputs := tx.RawTransaction.Data.BlockstakeOutputs
		for idx, uh := range tx.BlockstakeUnlockhashes {
			if uh != address || idx >= len(outputs) {
				continue
			}
			out, err := r.candidate(tx, outputs[idx], tx.BlockstakeUnlockhashes, tx.BlockstakeOutputIDs, idx, r.blockstakePrecision)
			if isUnrecognized(err) {
				r.observer.droppedElement(tx.ID, err)
				dropped = append(dropped, err)
				continue
			}
			if err != nil {
				return Reconciliation{}, err
			}
			candidates = append(candidates, out)
		}
	}
	return settle(candidates, dropped, txs, blockstakeInputs, r.blockstakePrecision)
}

// MinerPayouts reconciles the block payouts paid to address. Payouts are
// spent by coin inputs.
func (r *Reconciler) MinerPayouts(address string, txs []RawTransaction, blocks []RawBlock) (Reconciliation, error) {
	var candidates []model.Output
	for _, block := range blocks {
		for idx, mp := range block.RawBlock.MinerPayouts {
			if mp.Unlockhash != address {
				continue
			}
			id := safe.Index(block.MinerPayoutIDs, idx)
			value, err := parseAmount(mp.Value, r.precision)
			if err != nil {
				return Reconciliation{}, fmt.Errorf("block %s miner payout %d: %w", block.BlockID, idx, err)
			}
			custody, err := custodyAt(block.MinerPayoutCustodyFees, idx, r.precision)
			if err != nil {
				return Reconciliation{}, fmt.Errorf("block %s miner payout %d: %w", block.BlockID, idx, err)
			}
			candidates = append(candidates, model.Output{
				ID:                   id,
				Value:                value,
				Condition:            model.UnlockhashCondition{Unlockhash: mp.Unlockhash},
				BlockHeight:          block.Height,
				BlockID:              block.BlockID,
				Unlockhash:           mp.Unlockhash,
				IsBlockCreatorReward: idx == 0,
				Custody:              custody,
			})
		}
	}
	return settle(candidates, nil, txs, coinInputs, r.precision)
}

func (r *Reconciler) candidate(tx RawTransaction, raw RawOutput, unlockhashes, ids []string, idx int, precision uint) (model.Output, error) {
	id := safe.Index(ids, idx)
	value, err := parseAmount(raw.Value, precision)
	if err != nil {
		return model.Output{}, fmt.Errorf("tx %s output %s value: %w", tx.ID, id, err)
	}
	cond, err := DecodeCondition(raw, unlockhashes, idx)
	if err != nil {
		return model.Output{}, outputConditionError(tx.ID, id, err)
	}
	if isDegraded(cond) {
		r.observer.degradedTimelock(id, tx.ID)
	}
	return model.Output{
		ID:          id,
		Value:       value,
		Condition:   cond,
		BlockHeight: tx.Height,
		BlockID:     tx.Parent,
		TxID:        tx.ID,
		Unlockhash:  safe.Index(unlockhashes, idx),
	}, nil
}

func coinInputs(tx RawTransaction) []RawInput       { return tx.RawTransaction.Data.CoinInputs }
func blockstakeInputs(tx RawTransaction) []RawInput { return tx.RawTransaction.Data.BlockstakeInputs }

// settle moves every candidate referenced by an input from unspent to spent,
// scanning transactions in the given order. An output is settled by the first
// input referencing it.
func settle(candidates []model.Output, dropped []error, txs []RawTransaction, inputs func(RawTransaction) []RawInput, precision uint) (Reconciliation, error) {
	res := Reconciliation{
		Unspent: make([]model.Output, 0, len(candidates)),
		Spent:   make([]model.Output, 0),
		Dropped: dropped,
	}
	res.Unspent = append(res.Unspent, candidates...)

	recorded := false
	for _, tx := range txs {
		for _, in := range inputs(tx) {
			idx := indexOfOutput(res.Unspent, in.ParentID)
			if idx < 0 {
				continue
			}
			if !recorded || tx.Height > res.LastSpent.Height {
				res.LastSpent = model.LastSpent{Height: tx.Height, TxID: tx.ID}
				recorded = true
			}
			spent := res.Unspent[idx]
			spent.Spent = true
			res.Spent = append(res.Spent, spent)
			res.Unspent = append(res.Unspent[:idx], res.Unspent[idx+1:]...)
		}
	}

	balance := model.NewCurrencyFromUint64(0, precision)
	for _, out := range res.Unspent {
		var err error
		balance, err = balance.Add(out.Value)
		if err != nil {
			return Reconciliation{}, fmt.Errorf("sum output %s: %w", out.ID, err)
		}
	}
	res.Balance = balance
	return res, nil
}

func indexOfOutput(outputs []model.Output, id string) int {
	for i := range outputs {
		if outputs[i].ID == id {
			return i
		}
	}
	return -1
}

// laterSpent returns whichever of a and b happened at the greater height.
func laterSpent(a, b model.LastSpent) model.LastSpent {
	if b.TxID != "" && (a.TxID == "" || b.Height > a.Height) {
		return b
	}
	return a
}
