package model

// ConditionType is the wire tag of a spending condition.
type ConditionType uint8

const (
	ConditionTypeNil            ConditionType = 0
	ConditionTypeUnlockhash     ConditionType = 1
	ConditionTypeAtomicSwap     ConditionType = 2
	ConditionTypeTimelock       ConditionType = 3
	ConditionTypeMultisignature ConditionType = 4
	ConditionTypeCustodyFee     ConditionType = 128
)

// Condition describes who may spend an output. Implementations are the
// *Condition types of this package.
type Condition interface {
	ConditionType() ConditionType
	isCondition()
}

// NilCondition can be fulfilled by anyone.
type NilCondition struct{}

// UnlockhashCondition locks an output to a single address.
type UnlockhashCondition struct {
	Unlockhash string
	// Degraded is set when a timelock condition could not be decoded and
	// was reduced to its top-level unlockhash, dropping the lock time.
	Degraded bool
}

// AtomicSwapCondition locks an output to a hashed-secret contract.
type AtomicSwapCondition struct {
	Sender          string
	Receiver        string
	ContractAddress string
	HashedSecret    string
	Timelock        uint64
}

// TimelockCondition defers an inner condition until LockTime.
// Inner is a NilCondition, UnlockhashCondition or MultisignatureCondition.
type TimelockCondition struct {
	LockTime uint64
	Inner    Condition
}

// MultisignatureCondition requires RequiredSignatures of Addresses.
type MultisignatureCondition struct {
	Addresses          []string
	RequiredSignatures uint64
	ComputedAddress    string
}

// CustodyFeeCondition marks an output paid to the custody-fee void.
type CustodyFeeCondition struct {
	VoidAddress string
}

func (NilCondition) ConditionType() ConditionType            { return ConditionTypeNil }
func (UnlockhashCondition) ConditionType() ConditionType     { return ConditionTypeUnlockhash }
func (AtomicSwapCondition) ConditionType() ConditionType     { return ConditionTypeAtomicSwap }
func (TimelockCondition) ConditionType() ConditionType       { return ConditionTypeTimelock }
func (MultisignatureCondition) ConditionType() ConditionType { return ConditionTypeMultisignature }
func (CustodyFeeCondition) ConditionType() ConditionType     { return ConditionTypeCustodyFee }

func (NilCondition) isCondition()            {}
func (UnlockhashCondition) isCondition()     {}
func (AtomicSwapCondition) isCondition()     {}
func (TimelockCondition) isCondition()       {}
func (MultisignatureCondition) isCondition() {}
func (CustodyFeeCondition) isCondition()     {}
