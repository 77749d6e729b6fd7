package fieldspec

import (
	"testing"

	"github.com/tablelift/tablelift/internal/entity"
)

var invoiceFields = []entity.FieldSpec{
	{Name: "vendor", Type: "STRING", Prompt: "vendor name"},
	{Name: "invoice_date", Type: "DATE"},
	{Name: "total", Type: "CURRENCY"},
	{Name: "paid", Type: "BOOLEAN"},
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		fields  []entity.FieldSpec
		wantErr bool
	}{
		{name: "valid config", fields: invoiceFields},
		{name: "empty config", fields: nil, wantErr: true},
		{name: "blank name", fields: []entity.FieldSpec{{Name: "  ", Type: "STRING"}}, wantErr: true},
		{
			name: "duplicate name",
			fields: []entity.FieldSpec{
				{Name: "total", Type: "NUMBER"},
				{Name: "total", Type: "STRING"},
			},
			wantErr: true,
		},
		{name: "unknown type", fields: []entity.FieldSpec{{Name: "x", Type: "BLOB"}}, wantErr: true},
		{name: "case-insensitive type", fields: []entity.FieldSpec{{Name: "x", Type: "number"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.fields)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateResult(t *testing.T) {
	schema := BuildResultSchema(invoiceFields)

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "conforming payload",
			payload: `{"vendor":"Acme","invoice_date":"2026-01-31","total":"199.99","paid":true}`,
		},
		{
			name:    "missing required field",
			payload: `{"vendor":"Acme","invoice_date":"2026-01-31","total":"199.99"}`,
			wantErr: true,
		},
		{
			name:    "bad date format",
			payload: `{"vendor":"Acme","invoice_date":"31/01/2026","total":"199.99","paid":true}`,
			wantErr: true,
		},
		{
			name:    "extra property rejected",
			payload: `{"vendor":"Acme","invoice_date":"2026-01-31","total":"199.99","paid":true,"surprise":1}`,
			wantErr: true,
		},
		{
			name:    "not json",
			payload: `vendor=Acme`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResult(schema, []byte(tt.payload))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateResult() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestChecksum_DetectsDrift(t *testing.T) {
	a := Checksum(invoiceFields)
	if a != Checksum(invoiceFields) {
		t.Error("checksum not stable for identical config")
	}

	changed := append([]entity.FieldSpec(nil), invoiceFields...)
	changed[0].Prompt = "the legal vendor name"
	if a == Checksum(changed) {
		t.Error("checksum did not change when a prompt changed")
	}
}
