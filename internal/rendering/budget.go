package rendering

import (
	"fmt"
	"strconv"

	"github.com/jonathan/proposal-studio/internal/types"
)

// BudgetLine is one illustrative category in a budget chart.
// Teaser charts use Min and Max; full charts use Amount.
type BudgetLine struct {
	Category string `json:"category"`
	Min      int    `json:"min,omitempty"`
	Max      int    `json:"max,omitempty"`
	Amount   int    `json:"amount,omitempty"`
}

// Display formats the line's value for its mode.
func (l BudgetLine) Display() string {
	if l.Amount > 0 {
		return FormatUSD(l.Amount)
	}
	return fmt.Sprintf("%s – %s", FormatUSD(l.Min), FormatUSD(l.Max))
}

// Budget chart footnotes.
const (
	TeaserBudgetFootnote = "*Ranges represent estimated market rates for your style."
	FullBudgetFootnote   = "*Finalized costs based on vendor quotes."
)

// BudgetLines returns the illustrative chart data for a mode.
func BudgetLines(mode types.ProposalMode) []BudgetLine {
	if mode == types.ModeFull {
		return []BudgetLine{
			{Category: "Venue", Amount: 22500},
			{Category: "Catering", Amount: 28400},
			{Category: "Decor", Amount: 15600},
			{Category: "Planning", Amount: 10000},
		}
	}
	return []BudgetLine{
		{Category: "Venue", Min: 15000, Max: 25000},
		{Category: "Catering", Min: 20000, Max: 30000},
		{Category: "Decor", Min: 10000, Max: 18000},
		{Category: "Planning", Min: 8000, Max: 12000},
	}
}

// BudgetFootnote returns the footnote printed under the budget chart.
func BudgetFootnote(mode types.ProposalMode) string {
	if mode == types.ModeFull {
		return FullBudgetFootnote
	}
	return TeaserBudgetFootnote
}

// FormatUSD formats whole dollars with thousands separators, e.g. $22,500.
func FormatUSD(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.Itoa(amount)
	var out []byte
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}
	return sign + "$" + string(out)
}
