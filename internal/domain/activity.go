package domain

import (
	"fmt"
	"sort"
	"time"
)

const (
	DefaultBucketWidthHours = 2
	DefaultPeakTop          = 3
)

// placeholderPeakLabels são exibidos quando o período não tem nenhum evento
var placeholderPeakLabels = []string{"08:00 - 10:00", "14:00 - 16:00", "18:00 - 20:00"}

type PeakOptions struct {
	BucketWidthHours int
	Top              int
	Location         *time.Location
}

// normalized aplica os valores padrão para opções não informadas
func (o PeakOptions) normalized() PeakOptions {
	if o.BucketWidthHours <= 0 {
		o.BucketWidthHours = DefaultBucketWidthHours
	}
	if o.Top <= 0 {
		o.Top = DefaultPeakTop
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	return o
}

type ActivityBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ActivityPeaks são as faixas de horário com mais atividade.
// Synthetic indica que as faixas são de exemplo, sem dados reais.
type ActivityPeaks struct {
	Buckets   []ActivityBucket `json:"buckets"`
	Synthetic bool             `json:"synthetic"`
}

// BucketLabel monta o rótulo da faixa iniciada em hour. O limite superior não volta para 00.
func BucketLabel(hour, width int) string {
	return fmt.Sprintf("%02d:00 - %02d:00", hour, hour+width)
}

// ComputeActivityPeaks agrupa os eventos pela hora do dia e retorna as faixas mais movimentadas
func ComputeActivityPeaks(events []EventRecord, opts PeakOptions) ActivityPeaks {
	opts = opts.normalized()

	counts := make(map[string]int)
	for _, event := range events {
		if event.Timestamp.IsZero() {
			continue
		}
		hour := event.Timestamp.In(opts.Location).Hour()
		counts[BucketLabel(hour, opts.BucketWidthHours)]++
	}

	if len(counts) == 0 {
		return placeholderPeaks(opts.Top)
	}

	buckets := make([]ActivityBucket, 0, len(counts))
	for label, count := range counts {
		buckets = append(buckets, ActivityBucket{Label: label, Count: count})
	}

	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Label < buckets[j].Label
	})

	if len(buckets) > opts.Top {
		buckets = buckets[:opts.Top]
	}

	return ActivityPeaks{Buckets: buckets}
}

func placeholderPeaks(top int) ActivityPeaks {
	n := len(placeholderPeakLabels)
	if top < n {
		n = top
	}

	buckets := make([]ActivityBucket, 0, n)
	for _, label := range placeholderPeakLabels[:n] {
		buckets = append(buckets, ActivityBucket{Label: label})
	}

	return ActivityPeaks{Buckets: buckets, Synthetic: true}
}
