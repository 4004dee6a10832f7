package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type ProcedureShare struct {
	Procedure     string          `json:"procedure"`
	Quantity      int             `json:"quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
	SharePercent  decimal.Decimal `json:"share_percent"`
}

type ProcedureSalesSummary struct {
	Procedures    []ProcedureShare `json:"procedures"`
	TotalQuantity int              `json:"total_quantity"`
	TotalRevenue  decimal.Decimal  `json:"total_revenue"`
	AverageTicket decimal.Decimal  `json:"average_ticket"`
}

// SummarizeProcedureSales soma cada procedimento em todos os meses, ordena por receita e calcula totais e participação
func SummarizeProcedureSales(rows []*ProcedureSalesMetrics) ProcedureSalesSummary {
	summary := ProcedureSalesSummary{
		Procedures:    []ProcedureShare{},
		TotalRevenue:  decimal.Zero,
		AverageTicket: decimal.Zero,
	}

	// a tabela tem uma linha por mês; o resumo junta os meses de cada procedimento
	index := make(map[string]int, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}

		revenue := nonNegative(row.TotalRevenue)
		quantity := maxInt(0, row.Quantity)

		summary.TotalQuantity += quantity
		summary.TotalRevenue = summary.TotalRevenue.Add(revenue)

		i, seen := index[row.Procedure]
		if !seen {
			i = len(summary.Procedures)
			index[row.Procedure] = i
			summary.Procedures = append(summary.Procedures, ProcedureShare{
				Procedure:    row.Procedure,
				TotalRevenue: decimal.Zero,
			})
		}
		summary.Procedures[i].Quantity += quantity
		summary.Procedures[i].TotalRevenue = summary.Procedures[i].TotalRevenue.Add(revenue)
	}

	sort.SliceStable(summary.Procedures, func(i, j int) bool {
		a, b := summary.Procedures[i], summary.Procedures[j]
		if cmp := a.TotalRevenue.Cmp(b.TotalRevenue); cmp != 0 {
			return cmp > 0
		}
		return a.Procedure < b.Procedure
	})

	for i := range summary.Procedures {
		procedure := &summary.Procedures[i]
		procedure.AverageTicket = averageTicket(procedure.TotalRevenue, procedure.Quantity)
		procedure.SharePercent = sharePercent(procedure.TotalRevenue, summary.TotalRevenue)
	}

	summary.AverageTicket = averageTicket(summary.TotalRevenue, summary.TotalQuantity)

	return summary
}

func averageTicket(revenue decimal.Decimal, quantity int) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}
	return revenue.Div(decimal.NewFromInt(int64(quantity))).Round(2)
}

func sharePercent(part, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}

	share := part.Div(total).Mul(hundred).Round(2)
	if share.GreaterThan(hundred) {
		return hundred
	}
	return share
}

func nonNegative(value decimal.Decimal) decimal.Decimal {
	if value.IsNegative() {
		return decimal.Zero
	}
	return value
}
