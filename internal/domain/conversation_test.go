package domain

import (
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeConversationMetrics_SemLinhas(t *testing.T) {
	result := MergeConversationMetrics(nil)

	assert.Equal(t, NormalizedDashboardMetrics{}, result)
	assert.False(t, result.Available)
	assert.Zero(t, result.Channels.Total())
	assert.Zero(t, result.Satisfaction.Average)
}

func TestMergeConversationMetrics_SemLinhasMantemTodasAsChaves(t *testing.T) {
	raw, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(MergeConversationMetrics(nil))
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(raw, &payload))
	assert.Contains(t, payload, "month")
	assert.Equal(t, false, payload["available"])

	funnel, ok := payload["funnel"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, funnel, "response_time")
	assert.Contains(t, funnel, "avg_first_response_seconds")
}

func TestMergeConversationMetrics_UmaLinha(t *testing.T) {
	row := &ConversationMetrics{
		Month:                        time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		TotalConversations:           120,
		ConversationsWithAppointment: 36,
		AppointmentConversionRate:    floatPtr(30),
		AvgFirstResponseSeconds:      420,
		FastResponseRate:             64.5,
		Channels:                     ChannelCounts{WhatsApp: 80, Instagram: 25, Email: 10, Phone: 5},
		SatisfactionAverage:          4.6,
		AvgResolutionMinutes:         18,
	}

	result := MergeConversationMetrics([]*ConversationMetrics{row})

	assert.True(t, result.Available)
	assert.Equal(t, "2024-04-01", result.Month)
	assert.Equal(t, ChannelCounts{WhatsApp: 80, Instagram: 25, Email: 10, Phone: 5}, result.Channels)
	assert.Equal(t, Satisfaction{Average: 4.6, AvgResolutionMinutes: 18}, result.Satisfaction)
	assert.Equal(t, 120, result.Funnel.TotalConversations)
	assert.Equal(t, 36, result.Funnel.ConversationsWithAppointment)
	assert.Equal(t, 30.0, result.Funnel.AppointmentConversionRate)
	assert.Equal(t, ResponseGood, result.Funnel.ResponseTime)
}

func TestMergeConversationMetrics_UsaLinhaMaisRecente(t *testing.T) {
	older := &ConversationMetrics{Month: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), TotalConversations: 10}
	newer := &ConversationMetrics{Month: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), TotalConversations: 20}

	result := MergeConversationMetrics([]*ConversationMetrics{older, nil, newer})

	assert.Equal(t, 20, result.Funnel.TotalConversations)
	assert.Equal(t, "2024-03-01", result.Month)
	assert.Equal(t, 0.0, result.Funnel.AppointmentConversionRate)
	assert.Equal(t, ResponseFast, result.Funnel.ResponseTime)
}

func TestSummarizeProcedureSales(t *testing.T) {
	rows := []*ProcedureSalesMetrics{
		{Procedure: "Limpeza", Quantity: 10, TotalRevenue: decimal.NewFromInt(1500), AverageTicket: decimal.NewFromInt(150)},
		{Procedure: "Botox", Quantity: 5, TotalRevenue: decimal.NewFromInt(4500), AverageTicket: decimal.NewFromInt(900)},
		{Procedure: "Avaliação", Quantity: 15, TotalRevenue: decimal.NewFromInt(1500), AverageTicket: decimal.NewFromInt(100)},
		nil,
	}

	summary := SummarizeProcedureSales(rows)

	require.Len(t, summary.Procedures, 3)
	assert.Equal(t, "Botox", summary.Procedures[0].Procedure)
	assert.Equal(t, "Avaliação", summary.Procedures[1].Procedure)
	assert.Equal(t, "Limpeza", summary.Procedures[2].Procedure)

	assert.Equal(t, 30, summary.TotalQuantity)
	assert.True(t, decimal.NewFromInt(7500).Equal(summary.TotalRevenue))
	assert.True(t, decimal.NewFromInt(250).Equal(summary.AverageTicket))

	assert.Equal(t, "60", summary.Procedures[0].SharePercent.String())
	assert.Equal(t, "20", summary.Procedures[1].SharePercent.String())
}

func TestSummarizeProcedureSales_SemVendas(t *testing.T) {
	summary := SummarizeProcedureSales(nil)

	assert.NotNil(t, summary.Procedures)
	assert.Empty(t, summary.Procedures)
	assert.Zero(t, summary.TotalQuantity)
	assert.True(t, summary.TotalRevenue.IsZero())
	assert.True(t, summary.AverageTicket.IsZero())
}

func TestSummarizeProcedureSales_ValoresNegativosZerados(t *testing.T) {
	summary := SummarizeProcedureSales([]*ProcedureSalesMetrics{
		{Procedure: "Estorno", Quantity: -2, TotalRevenue: decimal.NewFromInt(-300)},
	})

	require.Len(t, summary.Procedures, 1)
	assert.Zero(t, summary.Procedures[0].Quantity)
	assert.True(t, summary.Procedures[0].TotalRevenue.IsZero())
	assert.True(t, summary.Procedures[0].SharePercent.IsZero())
}

func TestSummarizeProcedureSales_MesmoProcedimentoEmMesesDiferentes(t *testing.T) {
	april := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	may := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	summary := SummarizeProcedureSales([]*ProcedureSalesMetrics{
		{Month: april, Procedure: "Limpeza", Quantity: 5, TotalRevenue: decimal.NewFromInt(1000), AverageTicket: decimal.NewFromInt(200)},
		{Month: may, Procedure: "Limpeza", Quantity: 5, TotalRevenue: decimal.NewFromInt(500), AverageTicket: decimal.NewFromInt(100)},
		{Month: may, Procedure: "Toxina", Quantity: 1, TotalRevenue: decimal.NewFromInt(1200), AverageTicket: decimal.NewFromInt(1200)},
	})

	require.Len(t, summary.Procedures, 2)

	limpeza := summary.Procedures[0]
	assert.Equal(t, "Limpeza", limpeza.Procedure)
	assert.Equal(t, 10, limpeza.Quantity)
	assert.True(t, decimal.NewFromInt(1500).Equal(limpeza.TotalRevenue))
	assert.True(t, decimal.NewFromInt(150).Equal(limpeza.AverageTicket))
	assert.Equal(t, "55.56", limpeza.SharePercent.String())

	toxina := summary.Procedures[1]
	assert.Equal(t, "Toxina", toxina.Procedure)
	assert.Equal(t, "44.44", toxina.SharePercent.String())

	assert.Equal(t, 11, summary.TotalQuantity)
	assert.True(t, decimal.NewFromInt(2700).Equal(summary.TotalRevenue))
}
