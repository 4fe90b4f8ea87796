package calculator

import "DealProjector/internal/model"

// DSCR is (rent - |expenses| + debt service) / debt service. It is 0 when
// there is no rent or the ratio is not finite.
func DSCR(rent, expenses float64, service DebtService) float64 {
	if rent == 0 {
		return 0
	}
	total := service.Total()
	if expenses < 0 {
		expenses = -expenses
	}
	return Finite((rent - expenses + total) / total)
}

// ReturnOnCash is gain over the running cash invested, as a percentage.
// A non-positive cash position is an infinite return.
func ReturnOnCash(gain, totalCashInvested float64) model.CashReturn {
	if totalCashInvested <= 0 {
		return model.InfiniteReturn
	}
	return model.CashReturn{Percent: Finite(gain / totalCashInvested * 100)}
}
