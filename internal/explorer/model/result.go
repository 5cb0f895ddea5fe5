package model

// ResultKind tells which entity a hash lookup resolved to.
type ResultKind string

var (
	ResultWallet               ResultKind = "wallet"
	ResultBlock                ResultKind = "block"
	ResultTransaction          ResultKind = "transaction"
	ResultCoinOutputInfo       ResultKind = "coinoutputinfo"
	ResultBlockstakeOutputInfo ResultKind = "blockstakeoutputinfo"
)

// Result is the decoded entity returned by a hash lookup.
type Result interface {
	Kind() ResultKind
}

// CoinOutputInfo is a point lookup of one coin output. Input is nil iff the output is unspent.
type CoinOutputInfo struct {
	Output       *Output
	Input        *Input
	DecodeErrors []error
}

// BlockstakeOutputInfo is a point lookup of one blockstake output. Input is nil iff the output is unspent.
type BlockstakeOutputInfo struct {
	Output       *Output
	Input        *Input
	DecodeErrors []error
}

// Kind implements Result.
func (*CoinOutputInfo) Kind() ResultKind { return ResultCoinOutputInfo }

// Kind implements Result.
func (*BlockstakeOutputInfo) Kind() ResultKind { return ResultBlockstakeOutputInfo }
