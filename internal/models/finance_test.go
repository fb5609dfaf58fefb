package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpsertFinanceRequestValidate(t *testing.T) {
	assert.Empty(t, (&UpsertFinanceRequest{}).Validate())
	assert.Empty(t, (&UpsertFinanceRequest{
		Allowance: 2000, AdvancePaid: 5000, Loan: 10000, InterestPercent: 2.5, Premium: 500,
	}).Validate())

	assert.Contains(t, (&UpsertFinanceRequest{Allowance: -1}).Validate(), "allowance")
	assert.Contains(t, (&UpsertFinanceRequest{AdvancePaid: -1}).Validate(), "advancePaid")
	assert.Contains(t, (&UpsertFinanceRequest{Loan: -1}).Validate(), "loan")
	assert.Contains(t, (&UpsertFinanceRequest{InterestPercent: 101}).Validate(), "interestPercent")
	assert.Contains(t, (&UpsertFinanceRequest{Premium: -1}).Validate(), "premium")
}
