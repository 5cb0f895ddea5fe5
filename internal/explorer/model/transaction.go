package model

// Transaction versions understood by the decoder.
const (
	TransactionVersionLegacy           = 0
	TransactionVersionStandard         = 1
	TransactionVersionMinterDefinition = 128
	TransactionVersionCoinCreation     = 129
)

// TransactionMeta holds the fields shared by every transaction variant.
type TransactionMeta struct {
	ID          string
	Version     int
	BlockID     string
	BlockHeight uint64
	BlockTime   uint64
	Unconfirmed bool
	// DecodeErrors lists the outputs, inputs and mint fields left out
	// because their condition or fulfillment type is unknown.
	DecodeErrors []error
}

// Transaction is one of StandardTransaction, MinterDefinitionTransaction or
// CoinCreationTransaction.
type Transaction interface {
	Result
	Meta() TransactionMeta
	isTransaction()
}

// StandardTransaction moves coins and blockstakes (versions 0 and 1).
type StandardTransaction struct {
	TransactionMeta
	CoinInputs        []Input
	CoinOutputs       []Output
	BlockstakeInputs  []Input
	BlockstakeOutputs []Output
}

// MinterDefinitionTransaction redefines the condition allowed to mint coins.
type MinterDefinitionTransaction struct {
	TransactionMeta
	MintFulfillment Fulfillment
	MintCondition   Condition
}

// CoinCreationTransaction mints new coins.
type CoinCreationTransaction struct {
	TransactionMeta
	MintFulfillment Fulfillment
	CoinOutputs     []Output
}

func (t *StandardTransaction) Meta() TransactionMeta         { return t.TransactionMeta }
func (t *MinterDefinitionTransaction) Meta() TransactionMeta { return t.TransactionMeta }
func (t *CoinCreationTransaction) Meta() TransactionMeta     { return t.TransactionMeta }

func (*StandardTransaction) Kind() ResultKind         { return ResultTransaction }
func (*MinterDefinitionTransaction) Kind() ResultKind { return ResultTransaction }
func (*CoinCreationTransaction) Kind() ResultKind     { return ResultTransaction }

func (*StandardTransaction) isTransaction()         {}
func (*MinterDefinitionTransaction) isTransaction() {}
func (*CoinCreationTransaction) isTransaction()     {}
