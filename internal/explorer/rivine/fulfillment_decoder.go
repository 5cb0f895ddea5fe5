package rivine

import (
	"fmt"

	"github.com/goodnatureofminers/tfexplorer-parser/internal/explorer/model"
)

// DecodeInputFulfillment decodes the fulfillment of in, accepting the legacy unlocker shape.
func DecodeInputFulfillment(in RawInput) (model.Fulfillment, error) {
	f, err := normalizeFulfillment(in)
	if err != nil {
		return nil, err
	}
	return DecodeFulfillment(f)
}

// normalizeFulfillment maps a legacy unlocker onto the current fulfillment
// shape. in is not modified.
func normalizeFulfillment(in RawInput) (RawFulfillment, error) {
	if in.Unlocker != nil {
		return RawFulfillment{
			Type: in.Unlocker.Type,
			Data: RawFulfillmentData{
				PublicKey: in.Unlocker.Condition.PublicKey,
				Signature: in.Unlocker.Fulfillment.Signature,
			},
		}, nil
	}
	if in.Fulfillment == nil {
		return RawFulfillment{}, fmt.Errorf("%w: fulfillment", ErrMissingField)
	}
	return *in.Fulfillment, nil
}

// DecodeFulfillment decodes a tagged fulfillment.
func DecodeFulfillment(f RawFulfillment) (model.Fulfillment, error) {
	data := f.Data
	switch model.FulfillmentType(f.Type) {
	case model.FulfillmentTypeSingleSignature:
		return model.SingleSignatureFulfillment{PublicKey: data.PublicKey, Signature: data.Signature}, nil
	case model.FulfillmentTypeAtomicSwap:
		return model.AtomicSwapFulfillment{
			PublicKey: data.PublicKey,
			Signature: data.Signature,
			Secret:    data.Secret,
		}, nil
	case model.FulfillmentTypeMultisignature:
		pairs := make([]model.KeyPair, 0, len(data.Pairs))
		for _, p := range data.Pairs {
			pairs = append(pairs, model.KeyPair{PublicKey: p.PublicKey, Signature: p.Signature})
		}
		return model.MultisignatureFulfillment{Pairs: pairs}, nil
	default:
		return nil, fmt.Errorf("%w %d", ErrUnrecognizedFulfillment, f.Type)
	}
}
