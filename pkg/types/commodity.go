package types

// Commodity table keys.
const (
	CommodityGoatMilk  = "GoatMilk"
	CommodityCowMilk   = "CowMilk"
	CommoditySheepWool = "SheepWool"
	CommodityWater     = "Water"
	CommodityWeightTax = "LivestockWeightTax"
)

// CommodityKeys lists the keys the metrics reports read.
var CommodityKeys = []string{
	CommodityGoatMilk,
	CommodityCowMilk,
	CommoditySheepWool,
	CommodityWater,
	CommodityWeightTax,
}

// PriceSource looks up the unit price of a named commodity. Implementations
// return 0 when the commodity is unknown or the lookup fails.
type PriceSource interface {
	PriceOf(name string) float64
}
