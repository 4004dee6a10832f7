package domain

// Warning registra um conjunto de dados que não pôde ser lido; os números dele foram zerados
type Warning struct {
	Dataset Dataset `json:"dataset"`
	Message string  `json:"message"`
}

// Dashboard é o resultado completo de um cálculo do dashboard para um mês
type Dashboard struct {
	Filter        MetricFilter               `json:"filter"`
	Period        MonthWindow                `json:"period"`
	Funnel        *FunnelSummary             `json:"funnel"`
	RequestTypes  RequestTypeBreakdown       `json:"request_types"`
	ActivityPeaks ActivityPeaks              `json:"activity_peaks"`
	Conversations NormalizedDashboardMetrics `json:"conversations"`
	Procedures    ProcedureSalesSummary      `json:"procedures"`
	Warnings      []Warning                  `json:"warnings"`
}

// Degraded indica se algum conjunto de dados falhou
func (d *Dashboard) Degraded() bool {
	return len(d.Warnings) > 0
}
