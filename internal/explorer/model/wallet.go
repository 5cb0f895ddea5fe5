package model

// Wallet is the reconciled view of one address.
type Wallet struct {
	Address                    string
	ConfirmedCoinBalance       Currency
	ConfirmedBlockstakeBalance Currency
	IsBlockCreator             bool
	IsCustodyVoid              bool
	// CoinOutputs and BlockstakeOutputs list unspent outputs first, then spent ones.
	CoinOutputs                   []Output
	BlockstakeOutputs             []Output
	Transactions                  []Transaction
	MinerPayouts                  []Output
	CoinOutputsBlockCreator       []Output
	BlockstakeOutputsBlockCreator []Output
	LastCoinSpent                 LastSpent
	LastBlockstakeSpent           LastSpent
	MultisigAddresses             []string
	DecodeErrors                  []error
}

// Kind implements Result.
func (*Wallet) Kind() ResultKind { return ResultWallet }
