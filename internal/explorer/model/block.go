package model

// Block is a decoded explorer block.
type Block struct {
	ID                        string
	Height                    uint64
	Timestamp                 uint64
	ParentID                  string
	Transactions              []Transaction
	MinerPayouts              []MinerPayout
	EstimatedActiveBlockstake *Currency
	DecodeErrors              []error
}

// Kind implements Result.
func (*Block) Kind() ResultKind { return ResultBlock }
