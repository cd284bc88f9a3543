// Package metrics computes daily income, cost and profit figures for a set of
// animals from a snapshot of commodity prices.
package metrics

import "github.com/mesh-intelligence/farmstock/pkg/types"

// Prices is a snapshot of the commodity prices a report needs.
type Prices struct {
	GoatMilk  float64
	CowMilk   float64
	SheepWool float64
	Water     float64
	WeightTax float64
}

// LoadPrices reads every price key once from src.
func LoadPrices(src types.PriceSource) Prices {
	return Prices{
		GoatMilk:  src.PriceOf(types.CommodityGoatMilk),
		CowMilk:   src.PriceOf(types.CommodityCowMilk),
		SheepWool: src.PriceOf(types.CommoditySheepWool),
		Water:     src.PriceOf(types.CommodityWater),
		WeightTax: src.PriceOf(types.CommodityWeightTax),
	}
}

// IncomeOf returns the daily income of a: milk for cows and goats, wool for
// sheep, each at its own price. Unknown species earn nothing.
func (p Prices) IncomeOf(a types.Animal) float64 {
	switch a.Species {
	case types.SpeciesCow:
		return a.Yield * p.CowMilk
	case types.SpeciesGoat:
		return a.Yield * p.GoatMilk
	case types.SpeciesSheep:
		return a.Yield * p.SheepWool
	default:
		return 0
	}
}

// CostOf returns the daily cost of a: its own cost plus water and weight tax.
func (p Prices) CostOf(a types.Animal) float64 {
	return a.Cost + a.Water*p.Water + a.Weight*p.WeightTax
}

// WeightTaxOf returns the weight tax charged for a.
func (p Prices) WeightTaxOf(a types.Animal) float64 {
	return a.Weight * p.WeightTax
}

// Summary aggregates the figures of a set of animals.
type Summary struct {
	Count          int
	TotalIncome    float64
	TotalCost      float64
	ProfitOrLoss   float64 // TotalIncome - TotalCost
	AverageWeight  float64 // 0 when Count is 0
	TotalWeightTax float64
	TotalWater     float64
	TotalProduce   float64 // milk and wool yields summed
	OperationCost  float64 // sum of the animals' own Cost
}

// Aggregate sums IncomeOf and CostOf over animals. The empty set yields a
// zero Summary; callers that must report it use Report instead.
func Aggregate(animals []types.Animal, p Prices) Summary {
	var s Summary
	var totalWeight float64
	for _, a := range animals {
		s.TotalIncome += p.IncomeOf(a)
		s.TotalCost += p.CostOf(a)
		s.TotalWeightTax += p.WeightTaxOf(a)
		s.TotalWater += a.Water
		s.TotalProduce += a.Yield
		s.OperationCost += a.Cost
		totalWeight += a.Weight
	}
	s.Count = len(animals)
	s.ProfitOrLoss = s.TotalIncome - s.TotalCost
	if s.Count > 0 {
		s.AverageWeight = totalWeight / float64(s.Count)
	}
	return s
}

// Report aggregates animals, returning ErrNoAnimals for an empty set.
func Report(animals []types.Animal, p Prices) (Summary, error) {
	if len(animals) == 0 {
		return Summary{}, types.ErrNoAnimals
	}
	return Aggregate(animals, p), nil
}

// Percentage returns subset as a percentage of total, or 0 when total is 0.
func Percentage(subset, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(subset) / float64(total) * 100
}

// Outcome classifies a profit-or-loss figure.
type Outcome int

const (
	BreakEven Outcome = iota
	Profit
	Loss
)

// Outcome reports whether the summary is a profit, a loss or neither.
func (s Summary) Outcome() Outcome {
	switch {
	case s.ProfitOrLoss > 0:
		return Profit
	case s.ProfitOrLoss < 0:
		return Loss
	default:
		return BreakEven
	}
}
