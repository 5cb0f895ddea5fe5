package rivine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/goodnatureofminers/tfexplorer-parser/internal/explorer/model"
)

func TestDecodeInputFulfillment(t *testing.T) {
	legacy := &RawUnlocker{Type: 1}
	legacy.Condition.PublicKey = "ed25519:aa"
	legacy.Fulfillment.Signature = "sig"

	tests := []struct {
		name    string
		in      RawInput
		want    model.Fulfillment
		wantErr error
	}{
		{
			name: "single signature",
			in: RawInput{Fulfillment: &RawFulfillment{
				Type: 1,
				Data: RawFulfillmentData{PublicKey: "ed25519:bb", Signature: "s1"},
			}},
			want: model.SingleSignatureFulfillment{PublicKey: "ed25519:bb", Signature: "s1"},
		},
		{
			name: "legacy unlocker",
			in:   RawInput{Unlocker: legacy},
			want: model.SingleSignatureFulfillment{PublicKey: "ed25519:aa", Signature: "sig"},
		},
		{
			name: "atomic swap keeps its own type",
			in: RawInput{Fulfillment: &RawFulfillment{
				Type: 2,
				Data: RawFulfillmentData{PublicKey: "ed25519:cc", Signature: "s2", Secret: "secret"},
			}},
			want: model.AtomicSwapFulfillment{PublicKey: "ed25519:cc", Signature: "s2", Secret: "secret"},
		},
		{
			name: "multisignature",
			in: RawInput{Fulfillment: &RawFulfillment{
				Type: 3,
				Data: RawFulfillmentData{Pairs: []RawKeyPair{
					{PublicKey: "ed25519:1", Signature: "a"},
					{PublicKey: "ed25519:2", Signature: "b"},
				}},
			}},
			want: model.MultisignatureFulfillment{Pairs: []model.KeyPair{
				{PublicKey: "ed25519:1", Signature: "a"},
				{PublicKey: "ed25519:2", Signature: "b"},
			}},
		},
		{
			name:    "missing fulfillment",
			in:      RawInput{ParentID: "p"},
			wantErr: ErrMissingField,
		},
		{
			name:    "unknown type",
			in:      RawInput{Fulfillment: &RawFulfillment{Type: 7}},
			wantErr: ErrUnrecognizedFulfillment,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeInputFulfillment(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DecodeInputFulfillment() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeInputFulfillment() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeInputFulfillment() got = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestNormalizeFulfillment_DoesNotMutateInput(t *testing.T) {
	unlocker := &RawUnlocker{Type: 1}
	unlocker.Condition.PublicKey = "ed25519:aa"
	unlocker.Fulfillment.Signature = "sig"
	in := RawInput{ParentID: "p", Unlocker: unlocker}

	if _, err := normalizeFulfillment(in); err != nil {
		t.Fatalf("normalizeFulfillment() unexpected error: %v", err)
	}
	if in.Fulfillment != nil || in.Unlocker != unlocker || unlocker.Condition.PublicKey != "ed25519:aa" {
		t.Fatalf("normalizeFulfillment() modified its input: %+v", in)
	}
}
