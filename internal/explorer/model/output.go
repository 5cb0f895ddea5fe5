package model

// CustodyInfo is the optional custody-fee overlay reported by explorers that
// charge a time-based fee on held coins.
type CustodyInfo struct {
	CreationTime       uint64
	IsCustodyFee       bool
	FeeComputationTime uint64
	CustodyFee         *Currency
	SpendableValue     *Currency
}

// Output is a coin or blockstake output.
type Output struct {
	ID        string
	Value     Currency
	Condition Condition
	// Spent is only decided by reconciliation and point lookups.
	Spent                bool
	BlockHeight          uint64
	BlockID              string
	TxID                 string
	Unlockhash           string
	IsBlockCreatorReward bool
	Custody              *CustodyInfo
}

// Input consumes the output identified by ParentID.
type Input struct {
	ParentID     string
	Fulfillment  Fulfillment
	ParentOutput *Output
	TxID         string
	Custody      *CustodyInfo
}

// LastSpent is the highest transaction spending an address' outputs.
// The zero value means nothing was spent.
type LastSpent struct {
	Height uint64
	TxID   string
}

// MinerPayout is a block reward or the combined fees of a block.
type MinerPayout struct {
	ID                   string
	Value                Currency
	Unlockhash           string
	IsBlockCreatorReward bool
	Description          string
	SourceTransactionIDs []string
	Custody              *CustodyInfo
}
