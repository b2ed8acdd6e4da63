package shopledger

import (
	"encoding/json"
	"testing"
)

func TestMoney_MulInt_IsExact(t *testing.T) {
	testCases := []struct {
		name     string
		price    Money
		quantity int64
		want     Money
	}{
		{name: "whole", price: USD(10.00), quantity: 3, want: USD(30)},
		{name: "cents", price: USD(0.10), quantity: 3, want: USD(0.30)},
		{name: "repeats binary", price: USD(1.10), quantity: 3, want: USD(3.30)},
		{name: "zero price", price: USD(0), quantity: 7, want: USD(0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.price.MulInt(tc.quantity)
			if !got.Equal(tc.want) {
				t.Errorf("%v x %d = %v, want %v", tc.price, tc.quantity, got, tc.want)
			}
		})
	}
}

func TestMoney_String_RoundsForDisplayOnly(t *testing.T) {
	m := USD(10).MulInt(1).Add(USD(0.005))
	if got := m.String(); got != "$10.01" {
		t.Errorf("String() = %q, want %q", got, "$10.01")
	}
	// The stored value keeps all its digits.
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "10.005" {
		t.Errorf("persisted value = %s, want 10.005", data)
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := USD(0).SignedString(); got != "-" {
		t.Errorf("zero SignedString() = %q, want -", got)
	}
	if got := USD(5).SignedString(); got != "+$5.00" {
		t.Errorf("positive SignedString() = %q, want +$5.00", got)
	}
	if got := USD(5).Neg().SignedString(); got != "-$5.00" {
		t.Errorf("negative SignedString() = %q, want -$5.00", got)
	}
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	in := USD(12.34)
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "12.34" {
		t.Fatalf("marshal = %s, want bare number 12.34", data)
	}
	var out Money
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Equal(in) {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}

func TestMoney_ZeroValueIsWeakCurrency(t *testing.T) {
	var zero Money
	got := zero.Add(USD(2))
	if got.Currency() != DefaultCurrency {
		t.Errorf("zero + USD currency = %q, want %q", got.Currency(), DefaultCurrency)
	}
	if !got.Equal(USD(2)) {
		t.Errorf("zero + $2 = %v, want $2", got)
	}
}
