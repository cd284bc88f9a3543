package console

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/farmstock/internal/metrics"
	"github.com/mesh-intelligence/farmstock/pkg/types"
)

// Formatter renders report figures. Money goes through go-money in Currency;
// every other figure is rounded half away from zero to two decimals.
type Formatter struct {
	Currency string
}

// NewFormatter returns a Formatter for the ISO 4217 code, falling back to
// USD for unknown codes.
func NewFormatter(currency string) Formatter {
	if money.GetCurrency(currency) == nil {
		currency = money.USD
	}
	return Formatter{Currency: currency}
}

// Money renders v in the formatter's currency, e.g. "$1,234.50".
func (f Formatter) Money(v float64) string {
	code := f.Currency
	cur := money.GetCurrency(code)
	if cur == nil {
		code = money.USD
		cur = money.GetCurrency(code)
	}
	if !types.IsFinite(v) {
		return nonFinite(v)
	}
	minor := decimal.NewFromFloat(v).Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, code).Display()
}

// Fixed renders v with two decimals.
func (f Formatter) Fixed(v float64) string {
	if !types.IsFinite(v) {
		return nonFinite(v)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// nonFinite renders NaN and infinities, which decimal cannot represent.
// Such values only reach a report from rows written outside farmstock.
func nonFinite(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Percent renders v as "12.50%".
func (f Formatter) Percent(v float64) string {
	return f.Fixed(v) + "%"
}

// WriteTable prints animals as an aligned table in the order given.
func WriteTable(w io.Writer, animals []types.Animal, f Formatter) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Type\tID\tWater\tCost\tWeight\tColour\tMilk/Wool")
	for _, a := range animals {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			a.Species, a.ID, f.Fixed(a.Water), f.Fixed(a.Cost), f.Fixed(a.Weight), a.Colour, f.Fixed(a.Yield))
	}
	tw.Flush()
}

// WriteRecord prints one animal with its species.
func WriteRecord(w io.Writer, a types.Animal, f Formatter) {
	fmt.Fprintf(w, "Animal type: %s\n", a.Species)
	WriteTable(w, []types.Animal{a}, f)
}

// writeOutcome prints the profit, loss or break-even line. subject is
// appended as " for <subject>" when non-empty.
func writeOutcome(w io.Writer, s metrics.Summary, subject string, f Formatter) {
	suffix := ""
	if subject != "" {
		suffix = " for " + subject
	}
	switch s.Outcome() {
	case metrics.Profit:
		fmt.Fprintf(w, "Profit%s: %s\n", suffix, f.Money(s.ProfitOrLoss))
	case metrics.Loss:
		fmt.Fprintf(w, "Loss%s: %s\n", suffix, f.Money(-s.ProfitOrLoss))
	default:
		fmt.Fprintf(w, "No Profit or Loss%s.\n", suffix)
	}
}

// WriteMetrics prints the whole-herd report.
func WriteMetrics(w io.Writer, s metrics.Summary, p metrics.Prices, f Formatter) {
	fmt.Fprintln(w, "Metrics Report:")
	fmt.Fprintf(w, "LivestockWeightTax: %s\n", f.Money(p.WeightTax))
	fmt.Fprintf(w, "WaterPrice: %s\n", f.Money(p.Water))
	fmt.Fprintf(w, "CowMilkPrice: %s\n", f.Money(p.CowMilk))
	fmt.Fprintf(w, "GoatMilkPrice: %s\n", f.Money(p.GoatMilk))
	fmt.Fprintf(w, "SheepWoolPrice: %s\n", f.Money(p.SheepWool))
	fmt.Fprintf(w, "Total Income Per Day: %s\n", f.Money(s.TotalIncome))
	fmt.Fprintf(w, "Total Cost Per Day: %s\n", f.Money(s.TotalCost))
	writeOutcome(w, s, "", f)
	fmt.Fprintf(w, "Average Weight of all livestock: %s KG\n", f.Fixed(s.AverageWeight))
}

// WriteColourReport prints the animals of one colour and their share of the
// herd, weight tax, income, cost and profit.
func WriteColourReport(w io.Writer, colour string, matches []types.Animal, total int, p metrics.Prices, f Formatter) {
	s := metrics.Aggregate(matches, p)
	subject := colour + " animals"

	WriteTable(w, matches, f)
	fmt.Fprintf(w, "Number of livestock in %s: %d\n", colour, s.Count)
	fmt.Fprintf(w, "Percentage of %s livestock: %s\n", colour, f.Percent(metrics.Percentage(s.Count, total)))
	fmt.Fprintf(w, "Tax per day for %s: %s\n", subject, f.Money(s.TotalWeightTax))
	fmt.Fprintf(w, "Total Income Per Day for %s: %s\n", subject, f.Money(s.TotalIncome))
	fmt.Fprintf(w, "Total Cost Per Day for %s: %s\n", subject, f.Money(s.TotalCost))
	writeOutcome(w, s, subject, f)
}

// WriteTypeReport prints produce, water and weight tax totals for one species.
func WriteTypeReport(w io.Writer, species types.Species, matches []types.Animal, p metrics.Prices, f Formatter) {
	s := metrics.Aggregate(matches, p)
	fmt.Fprintf(w, "Number of %s: %d\n", species, s.Count)
	fmt.Fprintf(w, "Total %s produce for the day: %s %s\n", species, f.Fixed(s.TotalProduce), species.YieldUnit())
	fmt.Fprintf(w, "Total water consumption for %s for the day: %s KG\n", species, f.Fixed(s.TotalWater))
	fmt.Fprintf(w, "Total tax for %s for the day: %s\n", species, f.Money(s.TotalWeightTax))
}

// WriteWeightReport prints the animals above threshold with their average
// weight, operation cost, income, cost and profit.
func WriteWeightReport(w io.Writer, threshold float64, matches []types.Animal, p metrics.Prices, f Formatter) {
	s := metrics.Aggregate(matches, p)

	WriteTable(w, matches, f)
	fmt.Fprintf(w, "Average Weight of animals above %s KG: %s KG\n", f.Fixed(threshold), f.Fixed(s.AverageWeight))
	fmt.Fprintf(w, "Total Operation Cost Per Day: %s\n", f.Money(s.OperationCost))
	fmt.Fprintf(w, "Total Income Per Day: %s\n", f.Money(s.TotalIncome))
	fmt.Fprintf(w, "Total Cost Per Day: %s\n", f.Money(s.TotalCost))
	writeOutcome(w, s, "", f)
}
