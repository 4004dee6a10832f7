package metricsource

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// horários (hora do dia) das mensagens geradas para cada dia do período
var fixtureMessageHours = []int{9, 9, 10, 10, 11, 14, 14, 15, 18, 19}

var fixtureProcedures = []struct {
	name     string
	quantity int
	ticket   int64
}{
	{name: "Limpeza de pele", quantity: 42, ticket: 180},
	{name: "Toxina botulínica", quantity: 18, ticket: 1200},
	{name: "Preenchimento labial", quantity: 11, ticket: 1500},
	{name: "Avaliação", quantity: 65, ticket: 0},
}

// Fixture devolve dados fixos e determinísticos, para demonstração e desenvolvimento local
type Fixture struct {
	// Now define o "hoje" usado para limitar os registros gerados; nil usa time.Now
	Now func() time.Time
}

func NewFixture() *Fixture {
	return &Fixture{Now: time.Now}
}

func (f *Fixture) scale(filter domain.MetricFilter) int {
	if filter.HasEmployee() {
		return 1
	}
	return 3
}

func parseMonthKey(monthKey string) (time.Time, error) {
	month, err := time.Parse(domain.MonthKeyLayout, monthKey)
	if err != nil {
		return time.Time{}, domain.NewInputError("month", fmt.Sprintf("chave de mês inválida %q", monthKey))
	}
	return month, nil
}

func (f *Fixture) FetchMonthlySales(ctx context.Context, filter domain.MetricFilter, monthKey string) (*domain.MonthlySalesMetrics, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewSourceError(domain.DatasetMonthlySales, err)
	}

	month, err := parseMonthKey(monthKey)
	if err != nil {
		return nil, err
	}

	scale := f.scale(filter)
	variation := int(month.Month())
	rate := 18.5 + float64(variation)/2

	return &domain.MonthlySalesMetrics{
		TenantID:          filter.TenantID,
		EmployeeID:        filter.EmployeeID,
		Month:             month,
		NewLeadsToday:     2 * scale,
		AppointmentsToday: scale,
		ConversionRate:    &rate,
		LeadsTrend:        12.5,
		AppointmentsTrend: -4,
		LeadsByChannel: domain.ChannelCounts{
			WhatsApp:  24 * scale,
			Instagram: 9 * scale,
			Email:     2 * scale,
			Phone:     3 * scale,
		},
		NewClients:      (30 + variation) * scale,
		DistinctClients: (52 + variation) * scale,
	}, nil
}

func (f *Fixture) FetchConversationMetrics(ctx context.Context, filter domain.MetricFilter, monthKey string) (*domain.ConversationMetrics, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewSourceError(domain.DatasetConversationMetrics, err)
	}

	month, err := parseMonthKey(monthKey)
	if err != nil {
		return nil, err
	}

	scale := f.scale(filter)
	total := 120 * scale
	withAppointment := 33 * scale
	rate := utils.RoundWithTwoDecimalPlace(float64(withAppointment) / float64(total) * 100)

	return &domain.ConversationMetrics{
		TenantID:                     filter.TenantID,
		EmployeeID:                   filter.EmployeeID,
		Month:                        month,
		TotalConversations:           total,
		ConversationsWithAppointment: withAppointment,
		AppointmentConversionRate:    &rate,
		AvgFirstResponseSeconds:      245,
		FastResponseRate:             71.4,
		Channels: domain.ChannelCounts{
			WhatsApp:  78 * scale,
			Instagram: 30 * scale,
			Email:     7 * scale,
			Phone:     5 * scale,
		},
		SatisfactionAverage:  4.7,
		AvgResolutionMinutes: 22,
	}, nil
}

func (f *Fixture) FetchProcedureSales(ctx context.Context, filter domain.MetricFilter) ([]*domain.ProcedureSalesMetrics, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewSourceError(domain.DatasetProcedureSales, err)
	}

	month := domain.ResolveMonthAt(f.now()).Start
	rows := make([]*domain.ProcedureSalesMetrics, 0, len(fixtureProcedures))
	for _, procedure := range fixtureProcedures {
		ticket := decimal.NewFromInt(procedure.ticket)
		rows = append(rows, &domain.ProcedureSalesMetrics{
			TenantID:      filter.TenantID,
			Month:         month,
			Procedure:     procedure.name,
			Quantity:      procedure.quantity,
			TotalRevenue:  ticket.Mul(decimal.NewFromInt(int64(procedure.quantity))),
			AverageTicket: ticket,
		})
	}

	return rows, nil
}

func (f *Fixture) FetchEvents(ctx context.Context, filter domain.MetricFilter, start, end time.Time) ([]domain.EventRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewSourceError(domain.DatasetEvents, err)
	}

	categories := []string{"whatsapp", "instagram", "email", "phone"}
	events := make([]domain.EventRecord, 0)
	f.eachDay(start, end, func(day time.Time, index int) {
		for i, hour := range fixtureMessageHours {
			if filter.HasEmployee() && i%3 != 0 {
				continue
			}
			timestamp := day.Add(time.Duration(hour)*time.Hour + time.Duration(i*5)*time.Minute)
			if timestamp.After(end) {
				continue
			}
			events = append(events, domain.EventRecord{
				Timestamp:      timestamp,
				SourceCategory: categories[(index+i)%len(categories)],
			})
		}
	})

	return events, nil
}

func (f *Fixture) FetchAppointmentsAndConversations(ctx context.Context, filter domain.MetricFilter, start, end time.Time) ([]domain.AppointmentRecord, []domain.ConversationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, domain.NewSourceError(domain.DatasetFunnelEvents, err)
	}

	scale := f.scale(filter)
	appointments := make([]domain.AppointmentRecord, 0)
	conversations := make([]domain.ConversationRecord, 0)

	f.eachDay(start, end, func(day time.Time, index int) {
		for i := 0; i < 4*scale; i++ {
			id := fmt.Sprintf("conv-%s-%02d", day.Format("20060102"), i)
			conversations = append(conversations, domain.ConversationRecord{
				ID:          id,
				CreatedAt:   day.Add(time.Duration(9+i%9) * time.Hour),
				EmployeeRef: filter.EmployeeID,
			})

			if i%4 == 0 {
				ref := id
				appointments = append(appointments, domain.AppointmentRecord{
					ID:              "apt-" + id,
					ConversationRef: &ref,
					CreatedAt:       day.Add(time.Duration(10+i%8) * time.Hour),
				})
			}
		}

		if index%3 == 0 {
			appointments = append(appointments, domain.AppointmentRecord{
				ID:        fmt.Sprintf("apt-rebooking-%s", day.Format("20060102")),
				CreatedAt: day.Add(16 * time.Hour),
			})
		}
	})

	return appointments, conversations, nil
}

// eachDay percorre os dias do período, sem passar de hoje
func (f *Fixture) eachDay(start, end time.Time, fn func(day time.Time, index int)) {
	limit := end
	if now := f.now(); now.Before(limit) {
		limit = now
	}

	day := utils.StartOfDay(start)
	for index := 0; !day.After(limit); index++ {
		fn(day, index)
		day = day.AddDate(0, 0, 1)
	}
}

func (f *Fixture) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}
