package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Plan     string `json:"plan" validate:"omitempty,oneof=free pro lifetime"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name   string
		input  signup
		fields []string
	}{
		{"valid", signup{Email: "a@b.com", Password: "longenough"}, nil},
		{"missing email", signup{Password: "longenough"}, []string{"Email"}},
		{"short password and bad plan", signup{Email: "a@b.com", Password: "x", Plan: "gold"}, []string{"Password", "Plan"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(tt.input)
			var got []string
			for _, e := range errs {
				got = append(got, e.Field)
				assert.NotEmpty(t, e.Message)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestBindAndValidate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantStatus int
	}{
		{"valid body", `{"email":"a@b.com","password":"longenough"}`, true, http.StatusOK},
		{"malformed json", `{"email":`, false, http.StatusBadRequest},
		{"fails validation", `{"email":"nope","password":"longenough"}`, false, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var dst signup
			ok := BindAndValidate(c, &dst)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Equal(t, tt.wantStatus, w.Code)
			}
		})
	}
}
