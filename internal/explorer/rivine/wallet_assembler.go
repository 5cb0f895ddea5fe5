package rivine

import (
	"fmt"

	"github.com/goodnatureofminers/tfexplorer-parser/internal/explorer/model"
)

// assembleWallet reconciles the response of an unlockhash lookup. The custody
// void wins over the block creator, which wins over an ordinary address.
func (p *Parser) assembleWallet(res HashResponse, address string) (*model.Wallet, error) {
	txs, err := p.assembleTransactions(res.Transactions, nil)
	if err != nil {
		return nil, fmt.Errorf("wallet %s: %w", address, err)
	}

	var w *model.Wallet
	switch {
	case address == p.cfg.CustodyVoidAddress:
		w, err = p.custodyVoidWallet(res, address)
	case res.Blocks != nil:
		w, err = p.blockCreatorWallet(res, address)
	default:
		w, err = p.ordinaryWallet(res, address)
	}
	if err != nil {
		return nil, fmt.Errorf("wallet %s: %w", address, err)
	}

	w.Transactions = txs
	w.DecodeErrors = mergeDrops(transactionDrops(txs), w.DecodeErrors)
	if res.MultisigAddresses != nil {
		w.MultisigAddresses = append([]string(nil), res.MultisigAddresses...)
	}
	return w, nil
}

func (p *Parser) custodyVoidWallet(res HashResponse, address string) (*model.Wallet, error) {
	coins, err := p.reconciler.CoinOutputs(address, res.Transactions)
	if err != nil {
		return nil, err
	}
	return &model.Wallet{
		Address:                    address,
		IsCustodyVoid:              true,
		ConfirmedCoinBalance:       coins.Balance,
		ConfirmedBlockstakeBalance: model.NewCurrencyFromUint64(0, p.cfg.BlockstakePrecision),
		CoinOutputs:                coins.Outputs(),
		LastCoinSpent:              coins.LastSpent,
		DecodeErrors:               coins.Dropped,
	}, nil
}

func (p *Parser) blockCreatorWallet(res HashResponse, address string) (*model.Wallet, error) {
	payouts, err := p.reconciler.MinerPayouts(address, res.Transactions, res.Blocks)
	if err != nil {
		return nil, err
	}
	coins, err := p.reconciler.CoinOutputs(address, res.Transactions)
	if err != nil {
		return nil, err
	}
	stakes, err := p.reconciler.BlockstakeOutputs(address, res.Transactions)
	if err != nil {
		return nil, err
	}
	balance, err := payouts.Balance.Add(coins.Balance)
	if err != nil {
		return nil, fmt.Errorf("coin balance: %w", err)
	}

	coinOutputs := coins.Outputs()
	stakeOutputs := stakes.Outputs()
	return &model.Wallet{
		Address:                       address,
		IsBlockCreator:                true,
		ConfirmedCoinBalance:          balance,
		ConfirmedBlockstakeBalance:    stakes.Balance,
		CoinOutputs:                   coinOutputs,
		BlockstakeOutputs:             stakeOutputs,
		MinerPayouts:                  payouts.Outputs(),
		CoinOutputsBlockCreator:       coinOutputs,
		BlockstakeOutputsBlockCreator: stakeOutputs,
		LastCoinSpent:                 laterSpent(coins.LastSpent, payouts.LastSpent),
		LastBlockstakeSpent:           stakes.LastSpent,
		DecodeErrors:                  mergeDrops(coins.Dropped, stakes.Dropped),
	}, nil
}

func (p *Parser) ordinaryWallet(res HashResponse, address string) (*model.Wallet, error) {
	coins, err := p.reconciler.CoinOutputs(address, res.Transactions)
	if err != nil {
		return nil, err
	}
	stakes, err := p.reconciler.BlockstakeOutputs(address, res.Transactions)
	if err != nil {
		return nil, err
	}
	return &model.Wallet{
		Address:                    address,
		ConfirmedCoinBalance:       coins.Balance,
		ConfirmedBlockstakeBalance: stakes.Balance,
		CoinOutputs:                coins.Outputs(),
		BlockstakeOutputs:          stakes.Outputs(),
		LastCoinSpent:              coins.LastSpent,
		LastBlockstakeSpent:        stakes.LastSpent,
		DecodeErrors:               mergeDrops(coins.Dropped, stakes.Dropped),
	}, nil
}
