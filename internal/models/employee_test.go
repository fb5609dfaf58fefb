package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUID(t *testing.T) {
	assert.Equal(t, "AB12CD34", NormalizeUID("  ab12cd34 "))
	assert.Equal(t, "EMP01", NormalizeUID("emp01"))
	assert.Equal(t, "", NormalizeUID("   "))
}

func TestCreateEmployeeRequestValidate(t *testing.T) {
	valid := CreateEmployeeRequest{UID: "emp01", Name: "Asha Patel", Salary: 31000}
	assert.Empty(t, valid.Validate())

	cases := []struct {
		name  string
		req   CreateEmployeeRequest
		field string
	}{
		{"missing uid", CreateEmployeeRequest{Name: "Asha", Salary: 1}, "uid"},
		{"blank uid", CreateEmployeeRequest{UID: "  ", Name: "Asha", Salary: 1}, "uid"},
		{"short name", CreateEmployeeRequest{UID: "E1", Name: "A", Salary: 1}, "name"},
		{"zero salary", CreateEmployeeRequest{UID: "E1", Name: "Asha", Salary: 0}, "salary"},
		{"negative salary", CreateEmployeeRequest{UID: "E1", Name: "Asha", Salary: -5}, "salary"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, tc.req.Validate(), tc.field)
		})
	}
}

func TestUpdateEmployeeRequestValidate(t *testing.T) {
	name := "Asha"
	salary := 32000.0
	blank := "   "
	negative := -1.0

	assert.Empty(t, (&UpdateEmployeeRequest{}).Validate())
	assert.Empty(t, (&UpdateEmployeeRequest{Name: &name, Salary: &salary}).Validate())
	assert.Contains(t, (&UpdateEmployeeRequest{Name: &blank}).Validate(), "name")
	assert.Contains(t, (&UpdateEmployeeRequest{Salary: &negative}).Validate(), "salary")
}
