package models

import (
	"encoding/json"
	"testing"
)

func TestPaymentMethodUnmarshal(t *testing.T) {
	tests := []struct {
		input   string
		want    PaymentMethod
		wantErr bool
	}{
		{`"CASH"`, PaymentMethodCash, false},
		{`"BANK_TRANSFER"`, PaymentMethodBankTransfer, false},
		{`"CHECK"`, PaymentMethodCheck, false},
		{`"WIRE"`, "", true},
		{`""`, "", true},
		{`123`, "", true},
	}
	for _, tt := range tests {
		var m PaymentMethod
		err := json.Unmarshal([]byte(tt.input), &m)
		if tt.wantErr {
			if err == nil {
				t.Errorf("unmarshal %s: expected error, got %q", tt.input, m)
			}
			continue
		}
		if err != nil {
			t.Errorf("unmarshal %s: %v", tt.input, err)
		} else if m != tt.want {
			t.Errorf("unmarshal %s = %q, want %q", tt.input, m, tt.want)
		}
	}
}

func TestCashBankTypeUnmarshal(t *testing.T) {
	var ct CashBankType
	if err := json.Unmarshal([]byte(`"TRANSFER"`), &ct); err != nil || ct != CashBankTypeTransfer {
		t.Errorf("unmarshal TRANSFER = %q, %v", ct, err)
	}
	if err := json.Unmarshal([]byte(`"DEPOSIT"`), &ct); err == nil {
		t.Error("unmarshal DEPOSIT: expected error")
	}
}

func TestStockMovementTypeUnmarshal(t *testing.T) {
	for _, valid := range []string{"PURCHASE_IN", "TRANSFER_IN", "TRANSFER_OUT", "OPNAME", "ADJUSTMENT"} {
		var mt StockMovementType
		if err := json.Unmarshal([]byte(`"`+valid+`"`), &mt); err != nil {
			t.Errorf("unmarshal %s: %v", valid, err)
		}
		if string(mt) != valid {
			t.Errorf("unmarshal %s = %q", valid, mt)
		}
	}
	var mt StockMovementType
	if err := json.Unmarshal([]byte(`"SALE_OUT"`), &mt); err == nil {
		t.Error("unmarshal SALE_OUT: expected error")
	}
}

func TestStockDocumentStatusUnmarshal(t *testing.T) {
	var s StockDocumentStatus
	if err := json.Unmarshal([]byte(`"APPROVED"`), &s); err != nil || s != StockDocumentStatusApproved {
		t.Errorf("unmarshal APPROVED = %q, %v", s, err)
	}
	if err := json.Unmarshal([]byte(`"COMPLETED"`), &s); err == nil {
		t.Error("unmarshal COMPLETED: expected error")
	}
}
