package domain

// ConversionQuality é a classificação da taxa de conversão
type ConversionQuality string

const (
	ConversionExcellent        ConversionQuality = "excellent"
	ConversionGood             ConversionQuality = "good"
	ConversionNeedsImprovement ConversionQuality = "needs_improvement"
)

// ResponseTimeClass é a classificação do tempo médio de primeira resposta
type ResponseTimeClass string

const (
	ResponseFast ResponseTimeClass = "fast"
	ResponseGood ResponseTimeClass = "good"
	ResponseSlow ResponseTimeClass = "slow"
)

const (
	excellentConversionThreshold = 25.0
	goodConversionThreshold      = 15.0

	fastResponseSeconds = 300.0
	goodResponseSeconds = 600.0
)

// ClassifyConversionQuality classifica a taxa de conversão (percentual)
func ClassifyConversionQuality(rate float64) ConversionQuality {
	switch {
	case rate > excellentConversionThreshold:
		return ConversionExcellent
	case rate > goodConversionThreshold:
		return ConversionGood
	default:
		return ConversionNeedsImprovement
	}
}

// ClassifyResponseTime classifica o tempo médio de primeira resposta em segundos
func ClassifyResponseTime(avgSeconds float64) ResponseTimeClass {
	switch {
	case avgSeconds < fastResponseSeconds:
		return ResponseFast
	case avgSeconds < goodResponseSeconds:
		return ResponseGood
	default:
		return ResponseSlow
	}
}
