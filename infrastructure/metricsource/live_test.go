package metricsource

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/telemetry"
	"go.uber.org/mock/gomock"
)

type liveMocks struct {
	monthly      *mocks.MockMonthlySalesMetricsRepository
	conversation *mocks.MockConversationMetricsRepository
	procedure    *mocks.MockProcedureSalesMetricsRepository
	activity     *mocks.MockActivityRepository
}

func newTestLive(t *testing.T, timeout time.Duration) (*Live, liveMocks) {
	ctrl := gomock.NewController(t)

	m := liveMocks{
		monthly:      mocks.NewMockMonthlySalesMetricsRepository(ctrl),
		conversation: mocks.NewMockConversationMetricsRepository(ctrl),
		procedure:    mocks.NewMockProcedureSalesMetricsRepository(ctrl),
		activity:     mocks.NewMockActivityRepository(ctrl),
	}

	live := NewLive(m.monthly, m.conversation, m.procedure, m.activity, timeout, telemetry.NewMetrics())
	return live, m
}

func TestLive_FetchMonthlySales(t *testing.T) {
	filter := domain.MetricFilter{TenantID: "tenant-1"}

	tests := []struct {
		name     string
		setup    func(m liveMocks)
		validate func(t *testing.T, result *domain.MonthlySalesMetrics, err error)
	}{
		{
			name: "Linha encontrada",
			setup: func(m liveMocks) {
				m.monthly.EXPECT().
					GetByMonth(gomock.Any(), filter, "2024-03-01").
					Return(&domain.MonthlySalesMetrics{TenantID: "tenant-1", NewClients: 12}, nil)
			},
			validate: func(t *testing.T, result *domain.MonthlySalesMetrics, err error) {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, 12, result.NewClients)
			},
		},
		{
			name: "Sem linha - ausência não é erro",
			setup: func(m liveMocks) {
				m.monthly.EXPECT().GetByMonth(gomock.Any(), filter, "2024-03-01").Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.MonthlySalesMetrics, err error) {
				assert.NoError(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name: "Falha do repositório vira SourceError",
			setup: func(m liveMocks) {
				m.monthly.EXPECT().
					GetByMonth(gomock.Any(), filter, "2024-03-01").
					Return(nil, errors.New("erro ao executar a query: conexão recusada"))
			},
			validate: func(t *testing.T, result *domain.MonthlySalesMetrics, err error) {
				assert.Nil(t, result)
				assert.True(t, errors.Is(err, domain.ErrSourceUnavailable))

				var sourceErr *domain.SourceError
				require.True(t, errors.As(err, &sourceErr))
				assert.Equal(t, domain.DatasetMonthlySales, sourceErr.Dataset)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			live, m := newTestLive(t, time.Second)
			tt.setup(m)

			result, err := live.FetchMonthlySales(context.Background(), filter, "2024-03-01")
			tt.validate(t, result, err)
		})
	}
}

func TestLive_TimeoutViraSourceError(t *testing.T) {
	live, m := newTestLive(t, 20*time.Millisecond)

	m.conversation.EXPECT().
		GetByMonth(gomock.Any(), gomock.Any(), "2024-03-01").
		DoAndReturn(func(ctx context.Context, _ domain.MetricFilter, _ string) (*domain.ConversationMetrics, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	result, err := live.FetchConversationMetrics(context.Background(), domain.MetricFilter{}, "2024-03-01")

	assert.Nil(t, result)
	assert.True(t, domain.IsSourceUnavailable(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestLive_FetchAppointmentsAndConversations(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	filter := domain.MetricFilter{TenantID: "tenant-1"}
	ref := "conv-1"

	t.Run("Lê os dois conjuntos", func(t *testing.T) {
		live, m := newTestLive(t, time.Second)

		m.activity.EXPECT().
			ListAppointments(gomock.Any(), filter, start, end).
			Return([]domain.AppointmentRecord{{ID: "apt-1", ConversationRef: &ref}, {ID: "apt-2"}}, nil)
		m.activity.EXPECT().
			ListConversations(gomock.Any(), filter, start, end).
			Return([]domain.ConversationRecord{{ID: "conv-1"}}, nil)

		appointments, conversations, err := live.FetchAppointmentsAndConversations(context.Background(), filter, start, end)
		require.NoError(t, err)
		assert.Len(t, appointments, 2)
		assert.Len(t, conversations, 1)
	})

	t.Run("Falha em um dos dois invalida o conjunto", func(t *testing.T) {
		live, m := newTestLive(t, time.Second)

		m.activity.EXPECT().
			ListAppointments(gomock.Any(), filter, start, end).
			Return(nil, errors.New("erro ao escanear agendamentos"))
		m.activity.EXPECT().
			ListConversations(gomock.Any(), filter, start, end).
			Return([]domain.ConversationRecord{{ID: "conv-1"}}, nil).
			AnyTimes()

		appointments, conversations, err := live.FetchAppointmentsAndConversations(context.Background(), filter, start, end)
		assert.Nil(t, appointments)
		assert.Nil(t, conversations)

		var sourceErr *domain.SourceError
		require.True(t, errors.As(err, &sourceErr))
		assert.Equal(t, domain.DatasetFunnelEvents, sourceErr.Dataset)
	})
}

func TestLive_FetchProcedureSalesEEvents(t *testing.T) {
	live, m := newTestLive(t, time.Second)
	filter := domain.MetricFilter{TenantID: "tenant-1"}
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	m.procedure.EXPECT().ListByTenant(gomock.Any(), filter).Return([]*domain.ProcedureSalesMetrics{{Procedure: "Botox"}}, nil)
	m.activity.EXPECT().ListEvents(gomock.Any(), filter, start, end).Return(nil, errors.New("timeout"))

	procedures, err := live.FetchProcedureSales(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, procedures, 1)

	events, err := live.FetchEvents(context.Background(), filter, start, end)
	assert.Nil(t, events)
	assert.True(t, domain.IsSourceUnavailable(err))
}
