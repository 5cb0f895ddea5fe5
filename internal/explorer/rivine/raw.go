// Package rivine decodes Rivine explorer responses into the explorer domain model.
package rivine

import "encoding/json"

// Hash types reported by the explorer hash endpoint.
const (
	HashTypeUnlockhash         = "unlockhash"
	HashTypeCoinOutputID       = "coinoutputid"
	HashTypeBlockstakeOutputID = "blockstakeoutputid"
	HashTypeBlockID            = "blockid"
	HashTypeTransactionID      = "transactionid"
)

// HashResponse is the explorer answer to a hash lookup. A nil Blocks slice
// means the field was absent; an empty one means it was present.
type HashResponse struct {
	HashType          string           `json:"hashtype"`
	Block             *RawBlock        `json:"block,omitempty"`
	Transaction       *RawTransaction  `json:"transaction,omitempty"`
	Blocks            []RawBlock       `json:"blocks,omitempty"`
	Transactions      []RawTransaction `json:"transactions,omitempty"`
	MultisigAddresses []string         `json:"multisigaddresses,omitempty"`
}

// BlockResponse is the explorer answer to a block lookup.
type BlockResponse struct {
	Block RawBlock `json:"block"`
}

// RawBlock is an explorer block.
type RawBlock struct {
	BlockID                string           `json:"blockid"`
	Height                 uint64           `json:"height"`
	RawBlock               RawBlockHeader   `json:"rawblock"`
	Transactions           []RawTransaction `json:"transactions"`
	MinerPayoutIDs         []string         `json:"minerpayoutids"`
	EstimatedActiveBS      json.Number      `json:"estimatedactivebs,omitempty"`
	MinerPayoutCustodyFees []*RawCustodyFee `json:"minerpayoutcustodyfees,omitempty"`
}

// RawBlockHeader is the consensus part of an explorer block.
type RawBlockHeader struct {
	ParentID     string           `json:"parentid"`
	Timestamp    uint64           `json:"timestamp"`
	MinerPayouts []RawMinerPayout `json:"minerpayouts"`
}

// RawMinerPayout is a payout listed in a block header.
type RawMinerPayout struct {
	Value      json.Number `json:"value"`
	Unlockhash string      `json:"unlockhash"`
}

// RawTransaction is an explorer transaction with the explorer's derived arrays.
type RawTransaction struct {
	ID                     string             `json:"id"`
	Height                 uint64             `json:"height"`
	Parent                 string             `json:"parent,omitempty"`
	Unconfirmed            bool               `json:"unconfirmed"`
	RawTransaction         RawTransactionBody `json:"rawtransaction"`
	CoinInputOutputs       []RawOutput        `json:"coininputoutputs,omitempty"`
	CoinOutputIDs          []string           `json:"coinoutputids,omitempty"`
	CoinOutputUnlockhashes []string           `json:"coinoutputunlockhashes,omitempty"`
	CoinOutputCustodyFees  []*RawCustodyFee   `json:"coinoutputcustodyfees,omitempty"`
	BlockstakeInputOutputs []RawOutput        `json:"blockstakeinputoutputs,omitempty"`
	BlockstakeOutputIDs    []string           `json:"blockstakeoutputids,omitempty"`
	BlockstakeUnlockhashes []string           `json:"blockstakeunlockhashes,omitempty"`
}

// RawTransactionBody is the signed transaction.
type RawTransactionBody struct {
	Version int                `json:"version"`
	Data    RawTransactionData `json:"data"`
}

// RawTransactionData holds the version specific transaction fields.
type RawTransactionData struct {
	CoinInputs        []RawInput      `json:"coininputs,omitempty"`
	CoinOutputs       []RawOutput     `json:"coinoutputs,omitempty"`
	BlockstakeInputs  []RawInput      `json:"blockstakeinputs,omitempty"`
	BlockstakeOutputs []RawOutput     `json:"blockstakeoutputs,omitempty"`
	MinerFees         []json.Number   `json:"minerfees,omitempty"`
	ArbitraryData     string          `json:"arbitrarydata,omitempty"`
	Nonce             string          `json:"nonce,omitempty"`
	MintFulfillment   *RawFulfillment `json:"mintfulfillment,omitempty"`
	MintCondition     *RawCondition   `json:"mintcondition,omitempty"`
}

// RawOutput is a coin or blockstake output. Legacy outputs carry a bare
// Unlockhash and no Condition. Custody is only reported on input parents.
type RawOutput struct {
	Value      json.Number    `json:"value"`
	Condition  *RawCondition  `json:"condition,omitempty"`
	Unlockhash string         `json:"unlockhash,omitempty"`
	Custody    *RawCustodyFee `json:"custody,omitempty"`
}

// RawCondition is a tagged condition envelope.
type RawCondition struct {
	Type int              `json:"type"`
	Data RawConditionData `json:"data"`
}

// RawConditionData is the union of all condition payload fields.
type RawConditionData struct {
	Unlockhash            string        `json:"unlockhash,omitempty"`
	Unlockhashes          []string      `json:"unlockhashes,omitempty"`
	MinimumSignatureCount uint64        `json:"minimumsignaturecount,omitempty"`
	Sender                string        `json:"sender,omitempty"`
	Receiver              string        `json:"receiver,omitempty"`
	HashedSecret          string        `json:"hashedsecret,omitempty"`
	Timelock              uint64        `json:"timelock,omitempty"`
	LockTime              uint64        `json:"locktime,omitempty"`
	Condition             *RawCondition `json:"condition,omitempty"`
}

// RawInput spends the output with ParentID. Legacy inputs carry Unlocker
// instead of Fulfillment.
type RawInput struct {
	ParentID    string          `json:"parentid"`
	Fulfillment *RawFulfillment `json:"fulfillment,omitempty"`
	Unlocker    *RawUnlocker    `json:"unlocker,omitempty"`
}

// RawFulfillment is a tagged fulfillment envelope.
type RawFulfillment struct {
	Type int                `json:"type"`
	Data RawFulfillmentData `json:"data"`
}

// RawFulfillmentData is the union of all fulfillment payload fields.
type RawFulfillmentData struct {
	PublicKey string       `json:"publickey,omitempty"`
	Signature string       `json:"signature,omitempty"`
	Secret    string       `json:"secret,omitempty"`
	Pairs     []RawKeyPair `json:"pairs,omitempty"`
}

// RawKeyPair is one multisignature entry.
type RawKeyPair struct {
	PublicKey string `json:"publickey"`
	Signature string `json:"signature"`
}

// RawUnlocker is the legacy input authorization shape.
type RawUnlocker struct {
	Type      int `json:"type"`
	Condition struct {
		PublicKey string `json:"publickey"`
	} `json:"condition"`
	Fulfillment struct {
		Signature string `json:"signature"`
	} `json:"fulfillment"`
}

// RawCustodyFee is the custody overlay of one output or payout.
type RawCustodyFee struct {
	CreationTime       uint64      `json:"creationtime"`
	IsCustodyFee       bool        `json:"iscustodyfee"`
	FeeComputationTime uint64      `json:"feecomputationtime"`
	CustodyFee         json.Number `json:"custodyfee,omitempty"`
	SpendableValue     json.Number `json:"spendablevalue,omitempty"`
	Spent              bool        `json:"spent"`
}
