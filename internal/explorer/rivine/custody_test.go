package rivine

import "testing"

func TestDecodeCustody(t *testing.T) {
	info, err := decodeCustody(nil, DefaultPrecision)
	if err != nil || info != nil {
		t.Fatalf("decodeCustody(nil) = %+v, %v", info, err)
	}

	info, err = decodeCustody(&RawCustodyFee{
		CreationTime:       10,
		IsCustodyFee:       true,
		FeeComputationTime: 20,
		CustodyFee:         "5",
		SpendableValue:     "1000000000",
		Spent:              true,
	}, DefaultPrecision)
	if err != nil {
		t.Fatalf("decodeCustody() unexpected error: %v", err)
	}
	if info.CreationTime != 10 || !info.IsCustodyFee || info.FeeComputationTime != 20 {
		t.Fatalf("decodeCustody() = %+v", info)
	}
	if info.CustodyFee.String() != "0.000000005" || info.SpendableValue.String() != "1" {
		t.Fatalf("decodeCustody() fee = %s spendable = %s", info.CustodyFee, info.SpendableValue)
	}

	info, err = decodeCustody(&RawCustodyFee{CreationTime: 1}, DefaultPrecision)
	if err != nil {
		t.Fatalf("decodeCustody() unexpected error: %v", err)
	}
	if info.CustodyFee != nil || info.SpendableValue != nil {
		t.Fatalf("decodeCustody() attached empty amounts: %+v", info)
	}

	info, err = decodeCustody(&RawCustodyFee{CreationTime: 3, CustodyFee: "0", SpendableValue: "0"}, DefaultPrecision)
	if err != nil {
		t.Fatalf("decodeCustody() unexpected error: %v", err)
	}
	if info.CreationTime != 3 || info.CustodyFee != nil || info.SpendableValue != nil {
		t.Fatalf("decodeCustody() attached zero amounts: %+v", info)
	}

	if _, err = decodeCustody(&RawCustodyFee{CustodyFee: "x"}, DefaultPrecision); err == nil {
		t.Fatal("decodeCustody() expected error for invalid fee")
	}
}

func TestCustodyAt(t *testing.T) {
	fees := []*RawCustodyFee{nil, {CreationTime: 7}}

	for idx, want := range map[int]bool{0: false, 1: true, 5: false} {
		info, err := custodyAt(fees, idx, DefaultPrecision)
		if err != nil {
			t.Fatalf("custodyAt(%d) unexpected error: %v", idx, err)
		}
		if (info != nil) != want {
			t.Errorf("custodyAt(%d) = %+v, want present %v", idx, info, want)
		}
	}
}
