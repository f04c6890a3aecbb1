package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contact struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"telefono" validate:"omitempty,phone"`
	Items []item `json:"items" validate:"dive"`
}

type item struct {
	Quantity int `json:"cantidad" validate:"gt=0"`
}

func TestNewValidator_Phone(t *testing.T) {
	v := NewValidator()

	for _, phone := range []string{"+56912345678", "912345678", "123456789012345"} {
		assert.NoError(t, v.Var(phone, "phone"), phone)
	}
	for _, phone := range []string{"12345", "+56 9 1234 5678", "phone", "+1234567890123456"} {
		assert.Error(t, v.Var(phone, "phone"), phone)
	}
}

func TestWriteValidationError(t *testing.T) {
	v := NewValidator()
	err := v.Struct(contact{Email: "nope", Phone: "abc", Items: []item{{Quantity: 1}, {Quantity: 0}}})
	require.Error(t, err)

	rr := httptest.NewRecorder()
	require.NoError(t, WriteValidationError(rr, err))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var res ValidationErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.Equal(t, "invalid_input", res.Code)
	assert.Equal(t, map[string]string{
		"email":             "email",
		"telefono":          "phone",
		"items[1].cantidad": "gt",
	}, res.Fields)
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	require.NoError(t, WriteError(rr, "not_found", "order not found", http.StatusNotFound))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"code":"not_found","message":"order not found"}`, rr.Body.String())
}
