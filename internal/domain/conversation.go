package domain

import "time"

type ConversationFunnel struct {
	TotalConversations           int               `json:"total_conversations"`
	ConversationsWithAppointment int               `json:"conversations_with_appointment"`
	AppointmentConversionRate    float64           `json:"appointment_conversion_rate"`
	AvgFirstResponseSeconds      float64           `json:"avg_first_response_seconds"`
	FastResponseRate             float64           `json:"fast_response_rate"`
	ResponseTime                 ResponseTimeClass `json:"response_time"`
}

type Satisfaction struct {
	Average              float64 `json:"average"`
	AvgResolutionMinutes float64 `json:"avg_resolution_minutes"`
}

// NormalizedDashboardMetrics é a visão das métricas de conversas consumida pelo dashboard.
// Available é false quando o período não tem nenhuma linha; neste caso todos os campos são zero.
type NormalizedDashboardMetrics struct {
	Available    bool               `json:"available"`
	Month        string             `json:"month"`
	Funnel       ConversationFunnel `json:"funnel"`
	Channels     ChannelCounts      `json:"channels"`
	Satisfaction Satisfaction       `json:"satisfaction"`
}

// MergeConversationMetrics usa a linha mais recente (maior mês) e preenche os campos ausentes com zero
func MergeConversationMetrics(rows []*ConversationMetrics) NormalizedDashboardMetrics {
	latest := latestConversationRow(rows)
	if latest == nil {
		return NormalizedDashboardMetrics{}
	}

	rate := 0.0
	if latest.AppointmentConversionRate != nil {
		rate = *latest.AppointmentConversionRate
	}

	return NormalizedDashboardMetrics{
		Available: true,
		Month:     monthKeyOf(latest.Month),
		Funnel: ConversationFunnel{
			TotalConversations:           maxInt(0, latest.TotalConversations),
			ConversationsWithAppointment: maxInt(0, latest.ConversationsWithAppointment),
			AppointmentConversionRate:    rate,
			AvgFirstResponseSeconds:      latest.AvgFirstResponseSeconds,
			FastResponseRate:             latest.FastResponseRate,
			ResponseTime:                 ClassifyResponseTime(latest.AvgFirstResponseSeconds),
		},
		Channels: latest.Channels,
		Satisfaction: Satisfaction{
			Average:              latest.SatisfactionAverage,
			AvgResolutionMinutes: latest.AvgResolutionMinutes,
		},
	}
}

func latestConversationRow(rows []*ConversationMetrics) *ConversationMetrics {
	var latest *ConversationMetrics
	for _, row := range rows {
		if row == nil {
			continue
		}
		if latest == nil || row.Month.After(latest.Month) {
			latest = row
		}
	}
	return latest
}

func monthKeyOf(month time.Time) string {
	if month.IsZero() {
		return ""
	}
	return month.Format(MonthKeyLayout)
}
