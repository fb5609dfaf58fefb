package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{Email: "admin@example.com", Password: "supersecret", Name: "Admin"}
	assert.Empty(t, valid.Validate())

	cases := []struct {
		name  string
		req   RegisterRequest
		field string
	}{
		{"bad email", RegisterRequest{Email: "nope", Password: "supersecret", Name: "Admin"}, "email"},
		{"at on edge", RegisterRequest{Email: "@example.com", Password: "supersecret", Name: "Admin"}, "email"},
		{"short password", RegisterRequest{Email: "a@b.com", Password: "short", Name: "Admin"}, "password"},
		{"short name", RegisterRequest{Email: "a@b.com", Password: "supersecret", Name: "A"}, "name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, tc.req.Validate(), tc.field)
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	assert.Empty(t, (&LoginRequest{Email: "a@b.com", Password: "x"}).Validate())
	assert.Contains(t, (&LoginRequest{Password: "x"}).Validate(), "email")
	assert.Contains(t, (&LoginRequest{Email: "a@b.com"}).Validate(), "password")
}
