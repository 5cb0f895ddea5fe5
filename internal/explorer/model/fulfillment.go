package model

// FulfillmentType is the wire tag of an input fulfillment.
type FulfillmentType uint8

const (
	FulfillmentTypeSingleSignature FulfillmentType = 1
	FulfillmentTypeAtomicSwap      FulfillmentType = 2
	FulfillmentTypeMultisignature  FulfillmentType = 3
)

// Fulfillment is the proof an input presents for its parent condition.
type Fulfillment interface {
	FulfillmentType() FulfillmentType
	isFulfillment()
}

// SingleSignatureFulfillment signs for an unlockhash condition.
type SingleSignatureFulfillment struct {
	PublicKey string
	Signature string
}

// AtomicSwapFulfillment claims or refunds an atomic swap. Secret is empty on refunds.
type AtomicSwapFulfillment struct {
	PublicKey string
	Signature string
	Secret    string
}

// KeyPair is one signature of a multisignature fulfillment.
type KeyPair struct {
	PublicKey string
	Signature string
}

// MultisignatureFulfillment carries ordered key pairs.
type MultisignatureFulfillment struct {
	Pairs []KeyPair
}

func (SingleSignatureFulfillment) FulfillmentType() FulfillmentType {
	return FulfillmentTypeSingleSignature
}

func (AtomicSwapFulfillment) FulfillmentType() FulfillmentType {
	return FulfillmentTypeAtomicSwap
}

func (MultisignatureFulfillment) FulfillmentType() FulfillmentType {
	return FulfillmentTypeMultisignature
}

func (SingleSignatureFulfillment) isFulfillment() {}
func (AtomicSwapFulfillment) isFulfillment()      {}
func (MultisignatureFulfillment) isFulfillment()  {}
