package core

import "sort"

// Series holds per-period totals in parallel slices ordered by label.
type Series struct {
	Labels  []string `json:"labels" yaml:"labels"`
	Income  []Money  `json:"income" yaml:"income"`
	Expense []Money  `json:"expense" yaml:"expense"`
}

// CategorySpending is the expense total of one category compared with its goal.
type CategorySpending struct {
	Category string `json:"category" yaml:"category"`
	Spent    Money  `json:"spent" yaml:"spent"`
	Goal     Money  `json:"goal" yaml:"goal"`
	HasGoal  bool   `json:"has_goal" yaml:"has_goal"`
	OverGoal bool   `json:"over_goal" yaml:"over_goal"`
}

// Summary is the dashboard view of a set of records.
type Summary struct {
	Count        int                `json:"count" yaml:"count"`
	TotalIncome  Money              `json:"total_income" yaml:"total_income"`
	TotalExpense Money              `json:"total_expense" yaml:"total_expense"`
	Balance      Money              `json:"balance" yaml:"balance"`
	Daily        Series             `json:"daily" yaml:"daily"`
	Monthly      Series             `json:"monthly" yaml:"monthly"`
	ByCategory   []CategorySpending `json:"by_category" yaml:"by_category"`
}

type flows struct {
	income, expense Money
}

// Summarize aggregates records into totals, daily and monthly series and a
// per-category expense breakdown checked against goals. Grouping uses the
// raw EntryDate string, so malformed dates still group deterministically.
// The result does not depend on the order of records.
func Summarize(records []Record, goals GoalMap) Summary {
	s := Summary{Count: len(records)}

	daily := make(map[string]flows)
	monthly := make(map[string]flows)
	spent := make(map[string]Money)

	for _, r := range records {
		day := daily[r.EntryDate]
		month := monthly[monthKey(r.EntryDate)]

		switch {
		case r.Amount.IsPositive():
			s.TotalIncome = s.TotalIncome.Add(r.Amount)
			day.income = day.income.Add(r.Amount)
			month.income = month.income.Add(r.Amount)
		case r.Amount.IsNegative():
			abs := r.Amount.Abs()
			s.TotalExpense = s.TotalExpense.Add(abs)
			day.expense = day.expense.Add(abs)
			month.expense = month.expense.Add(abs)
			spent[r.Category] = spent[r.Category].Add(abs)
		}

		daily[r.EntryDate] = day
		monthly[monthKey(r.EntryDate)] = month
	}

	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	s.Daily = buildSeries(daily)
	s.Monthly = buildSeries(monthly)

	categories := make([]string, 0, len(spent))
	for c := range spent {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	s.ByCategory = make([]CategorySpending, 0, len(categories))
	for _, c := range categories {
		goal, ok := goals[c]
		s.ByCategory = append(s.ByCategory, CategorySpending{
			Category: c,
			Spent:    spent[c],
			Goal:     goal,
			HasGoal:  ok,
			OverGoal: spent[c].Cents > goal.Cents,
		})
	}

	return s
}

func buildSeries(groups map[string]flows) Series {
	labels := make([]string, 0, len(groups))
	for k := range groups {
		labels = append(labels, k)
	}
	sort.Strings(labels)

	out := Series{
		Labels:  labels,
		Income:  make([]Money, len(labels)),
		Expense: make([]Money, len(labels)),
	}
	for i, l := range labels {
		out.Income[i] = groups[l].income
		out.Expense[i] = groups[l].expense
	}
	return out
}

// monthKey returns the YYYY-MM prefix of a date key.
func monthKey(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// SpentInCategory sums the expenses of one category.
func SpentInCategory(records []Record, category string) Money {
	var total Money
	for _, r := range records {
		if r.Category == category && r.Amount.IsNegative() {
			total = total.Add(r.Amount.Abs())
		}
	}
	return total
}
