package report

import "github.com/shopspring/decimal"

// FinanceParams are the static per-employee financial inputs that are
// maintained by the payroll admin rather than derived from attendance.
type FinanceParams struct {
	Allowance       decimal.Decimal
	AdvancePaid     decimal.Decimal
	Loan            decimal.Decimal
	InterestPercent decimal.Decimal
	Premium         decimal.Decimal
}

// FinanceConfig supplies FinanceParams per employee uid with a default
// fallback. It is built by the caller (from the finance_profiles table)
// and injected into report assembly; nothing here is ambient state.
type FinanceConfig struct {
	Default   FinanceParams
	Overrides map[string]FinanceParams
}

// Lookup returns the params for uid, falling back to the default.
// A missing entry therefore behaves as "all parameters zero" when the
// default itself is zero, which is the documented degradation for
// employees without a finance profile.
func (c FinanceConfig) Lookup(uid string) FinanceParams {
	if p, ok := c.Overrides[uid]; ok {
		return p
	}
	return c.Default
}

// FinancialProfile is the fully resolved salary computation for one
// employee and one month. Every field is recomputed per report run and
// never persisted.
type FinancialProfile struct {
	MonthlySalary decimal.Decimal
	TotalDays     int
	PresenceDays  int
	AbsenceDays   int
	PayableDays   int
	TotalMinutes  float64

	PerDayAmount  decimal.Decimal
	PerMinuteWage decimal.Decimal

	GrossSalary        decimal.Decimal
	ShortfallDeduction decimal.Decimal
	EarnedSalary       decimal.Decimal

	Allowance       decimal.Decimal
	AdvancePaid     decimal.Decimal
	Loan            decimal.Decimal
	InterestPercent decimal.Decimal
	InterestAmount  decimal.Decimal
	Premium         decimal.Decimal
	TotalDeductions decimal.Decimal

	NetSalary decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// Project derives the month's financials from the salary, the day
// counts and aggregate worked minutes, and the employee's finance
// params. Stages resolve in dependency order: rates, gross, shortfall,
// earned, deductions, then net. Net salary is deliberately allowed to
// go negative when deductions exceed earnings.
func Project(salary float64, totalDays, presenceDays int, totalMinutes float64, p FinanceParams) FinancialProfile {
	f := FinancialProfile{
		MonthlySalary:   decimal.NewFromFloat(salary),
		TotalDays:       totalDays,
		PresenceDays:    presenceDays,
		AbsenceDays:     totalDays - presenceDays,
		TotalMinutes:    totalMinutes,
		Allowance:       p.Allowance,
		AdvancePaid:     p.AdvancePaid,
		Loan:            p.Loan,
		InterestPercent: p.InterestPercent,
		Premium:         p.Premium,
	}

	// The source formula derives payable days as total minus absence,
	// which is algebraically the presence count; both are kept so the
	// equivalence stays visible in the output.
	f.PayableDays = f.TotalDays - f.AbsenceDays

	if totalDays > 0 {
		days := decimal.NewFromInt(int64(totalDays))
		f.PerDayAmount = f.MonthlySalary.Div(days)
		f.PerMinuteWage = f.MonthlySalary.Div(days.Mul(decimal.NewFromFloat(FullDayMinutes)))
	}

	f.GrossSalary = f.PerDayAmount.Mul(decimal.NewFromInt(int64(f.PayableDays)))

	// Charge only the net monthly shortfall against the payable-day
	// target, at the per-minute wage; a surplus never becomes a credit.
	expected := float64(f.PayableDays) * FullDayMinutes
	shortfall := decimal.NewFromFloat(expected - totalMinutes).Mul(f.PerMinuteWage)
	if shortfall.IsNegative() {
		shortfall = decimal.Zero
	}
	f.ShortfallDeduction = shortfall

	f.EarnedSalary = f.GrossSalary.Sub(f.ShortfallDeduction)

	f.InterestAmount = f.Loan.Mul(f.InterestPercent).Div(hundred)
	f.TotalDeductions = f.AdvancePaid.Add(f.Loan).Add(f.InterestAmount).Add(f.Premium)

	f.NetSalary = f.EarnedSalary.Add(f.Allowance).Sub(f.TotalDeductions)
	return f
}
