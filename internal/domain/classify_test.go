package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyConversionQuality(t *testing.T) {
	tests := []struct {
		rate     float64
		expected ConversionQuality
	}{
		{rate: 0, expected: ConversionNeedsImprovement},
		{rate: 15, expected: ConversionNeedsImprovement},
		{rate: 15.01, expected: ConversionGood},
		{rate: 25, expected: ConversionGood},
		{rate: 25.01, expected: ConversionExcellent},
		{rate: 80, expected: ConversionExcellent},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyConversionQuality(tt.rate), "taxa %.2f", tt.rate)
	}
}

func TestClassifyResponseTime(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected ResponseTimeClass
	}{
		{seconds: 0, expected: ResponseFast},
		{seconds: 299.99, expected: ResponseFast},
		{seconds: 300, expected: ResponseGood},
		{seconds: 599.99, expected: ResponseGood},
		{seconds: 600, expected: ResponseSlow},
		{seconds: 3600, expected: ResponseSlow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyResponseTime(tt.seconds), "tempo %.2fs", tt.seconds)
	}
}
