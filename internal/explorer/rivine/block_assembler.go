package rivine

import (
	"fmt"

	"github.com/goodnatureofminers/tfexplorer-parser/internal/explorer/model"
	"github.com/goodnatureofminers/tfexplorer-parser/pkg/safe"
)

const (
	creatorRewardDescription = "Block Creator Reward (new coins)"
	feesDescription          = "All Transaction fees combined"
)

func (p *Parser) assembleBlock(raw RawBlock) (*model.Block, error) {
	bc := &blockContext{
		id:        raw.BlockID,
		height:    raw.Height,
		timestamp: raw.RawBlock.Timestamp,
	}
	txs, err := p.assembleTransactions(raw.Transactions, bc)
	if err != nil {
		return nil, fmt.Errorf("block %s: %w", raw.BlockID, err)
	}
	payouts, err := p.assembleMinerPayouts(raw)
	if err != nil {
		return nil, fmt.Errorf("block %s: %w", raw.BlockID, err)
	}

	block := &model.Block{
		ID:           raw.BlockID,
		Height:       raw.Height,
		Timestamp:    raw.RawBlock.Timestamp,
		ParentID:     raw.RawBlock.ParentID,
		Transactions: txs,
		MinerPayouts: payouts,
		DecodeErrors: transactionDrops(txs),
	}
	if raw.EstimatedActiveBS != "" {
		active, err := parseAmount(raw.EstimatedActiveBS, p.cfg.BlockstakePrecision)
		if err != nil {
			return nil, fmt.Errorf("block %s estimated active blockstake: %w", raw.BlockID, err)
		}
		block.EstimatedActiveBlockstake = &active
	}
	return block, nil
}

// assembleMinerPayouts labels payout 0 as the creator reward and every other
// payout as the fees of the transactions that paid miner fees.
func (p *Parser) assembleMinerPayouts(raw RawBlock) ([]model.MinerPayout, error) {
	var feeSources []string
	for _, tx := range raw.Transactions {
		if len(tx.RawTransaction.Data.MinerFees) > 0 {
			feeSources = append(feeSources, tx.ID)
		}
	}

	payouts := make([]model.MinerPayout, 0, len(raw.RawBlock.MinerPayouts))
	for idx, mp := range raw.RawBlock.MinerPayouts {
		value, err := parseAmount(mp.Value, p.cfg.Precision)
		if err != nil {
			return nil, fmt.Errorf("miner payout %d value: %w", idx, err)
		}
		custody, err := custodyAt(raw.MinerPayoutCustodyFees, idx, p.cfg.Precision)
		if err != nil {
			return nil, fmt.Errorf("miner payout %d: %w", idx, err)
		}
		payout := model.MinerPayout{
			ID:         safe.Index(raw.MinerPayoutIDs, idx),
			Value:      value,
			Unlockhash: mp.Unlockhash,
			Custody:    custody,
		}
		if idx == 0 {
			payout.IsBlockCreatorReward = true
			payout.Description = creatorRewardDescription
		} else {
			payout.Description = feesDescription
			payout.SourceTransactionIDs = append([]string(nil), feeSources...)
		}
		payouts = append(payouts, payout)
	}
	return payouts, nil
}
