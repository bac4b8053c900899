package campaigning

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
)

// moedas com unidade de valor baixo exigem um mínimo maior
var minimumDailyBudget = map[string]float64{
	"RUB": 85,
}

// maxDailyBudget mantém o valor em centavos exato em float64 e dentro de int64
const maxDailyBudget = 1_000_000_000

func MinimumDailyBudget(currency string) float64 {
	if v, ok := minimumDailyBudget[strings.ToUpper(currency)]; ok {
		return v
	}
	return 1
}

// ToMinorUnits converte unidades da moeda em centavos
func ToMinorUnits(v float64) int64 {
	return int64(math.Round(v * 100))
}

// ValidateDailyBudget devolve o orçamento em unidades da moeda
func ValidateDailyBudget(raw, currency string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, NewCampaignError(ErrInvalidBudget, apiErrors.ErrInvalidBudget, "Daily budget must be greater than 0")
	}

	if value > maxDailyBudget {
		return 0, NewCampaignError(ErrInvalidBudget, apiErrors.ErrInvalidBudget, "Daily budget is too large")
	}

	if min := MinimumDailyBudget(currency); value < min {
		return 0, NewCampaignError(ErrInvalidBudget, apiErrors.ErrInvalidBudget,
			fmt.Sprintf("Daily budget must be at least %s %s for your ad account.", formatAmount(min), currency))
	}

	return value, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
