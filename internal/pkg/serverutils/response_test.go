package serverutils

import (
	"strings"
	"testing"
)

func TestValidateRequest(t *testing.T) {
	type payload struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
		Role  string `validate:"omitempty,oneof=hr candidate"`
	}

	tests := []struct {
		name    string
		input   payload
		wantErr string
	}{
		{
			name:  "valid",
			input: payload{Name: "Ada", Email: "ada@example.com", Role: "hr"},
		},
		{
			name:    "missing name",
			input:   payload{Email: "ada@example.com"},
			wantErr: "Name",
		},
		{
			name:    "bad email",
			input:   payload{Name: "Ada", Email: "not-an-email"},
			wantErr: "Email",
		},
		{
			name:    "bad role",
			input:   payload{Name: "Ada", Email: "ada@example.com", Role: "admin"},
			wantErr: "oneof",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSuccessResponse(t *testing.T) {
	res := SuccessResponse("done", map[string]string{"k": "v"})
	if !res.Success {
		t.Error("expected success flag")
	}
	if res.Message != "done" {
		t.Errorf("unexpected message %s", res.Message)
	}
}

func TestErrorResponse(t *testing.T) {
	res := ErrorResponse(404, "not found")
	if res.Success {
		t.Error("expected failure flag")
	}
	if res.Code != 404 || res.Message != "not found" {
		t.Errorf("unexpected body %+v", res)
	}
}
