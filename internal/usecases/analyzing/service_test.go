package analyzing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/metricsource/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/telemetry"
	"go.uber.org/mock/gomock"
)

var (
	testFilter    = domain.MetricFilter{TenantID: "tenant-1"}
	testReference = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	testWindow    = domain.ResolveMonthAt(testReference)
)

func floatPtr(f float64) *float64 {
	return &f
}

func newTestService(t *testing.T) (*Service, *mocks.MockSource) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)

	cfg := &config.Config{Dashboard: config.Dashboard{PeakBucketWidthHours: 2, PeakTop: 3, Location: time.UTC}}
	service := NewService(cfg, source, telemetry.NewMetrics())
	service.now = func() time.Time { return testReference }

	return service, source
}

// expectAllReads prepara as cinco leituras do dashboard com dados válidos
func expectAllReads(source *mocks.MockSource) {
	source.EXPECT().
		FetchMonthlySales(gomock.Any(), testFilter, "2024-03-01").
		Return(&domain.MonthlySalesMetrics{NewClients: 40, ConversionRate: floatPtr(18)}, nil).
		AnyTimes()
	source.EXPECT().
		FetchConversationMetrics(gomock.Any(), testFilter, "2024-03-01").
		Return(&domain.ConversationMetrics{Month: testWindow.Start, TotalConversations: 100, ConversationsWithAppointment: 30, AppointmentConversionRate: floatPtr(30)}, nil).
		AnyTimes()
	source.EXPECT().
		FetchProcedureSales(gomock.Any(), testFilter).
		Return([]*domain.ProcedureSalesMetrics{{Procedure: "Botox", Quantity: 2, TotalRevenue: decimal.NewFromInt(1800)}}, nil).
		AnyTimes()
	source.EXPECT().
		FetchEvents(gomock.Any(), testFilter, testWindow.Start, testWindow.End).
		Return([]domain.EventRecord{
			{Timestamp: time.Date(2024, 3, 2, 9, 10, 0, 0, time.UTC)},
			{Timestamp: time.Date(2024, 3, 3, 9, 40, 0, 0, time.UTC)},
			{Timestamp: time.Date(2024, 3, 3, 14, 0, 0, 0, time.UTC)},
		}, nil).
		AnyTimes()
	source.EXPECT().
		FetchAppointmentsAndConversations(gomock.Any(), testFilter, testWindow.Start, testWindow.End).
		Return(
			[]domain.AppointmentRecord{{ID: "a1", ConversationRef: stringPtr("c1")}, {ID: "a2"}},
			[]domain.ConversationRecord{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}, {ID: "c4"}},
			nil,
		).
		AnyTimes()
}

func stringPtr(s string) *string {
	return &s
}

func TestService_GetDashboard_Completo(t *testing.T) {
	service, source := newTestService(t)
	expectAllReads(source)

	dashboard, err := service.GetDashboard(context.Background(), testFilter, nil)
	require.NoError(t, err)
	require.NotNil(t, dashboard)

	assert.False(t, dashboard.Degraded())
	assert.Empty(t, dashboard.Warnings)
	assert.Equal(t, "2024-03-01", dashboard.Period.MonthKey)

	require.NotNil(t, dashboard.Funnel)
	assert.Equal(t, 40, dashboard.Funnel.NewLeads)
	assert.Equal(t, 30.0, dashboard.Funnel.ConversionRate)
	assert.Equal(t, domain.ConversionExcellent, dashboard.Funnel.ConversionQuality)

	assert.Equal(t, 25, dashboard.RequestTypes.AgendamentosPercent)
	assert.Equal(t, 25, dashboard.RequestTypes.ReagendamentosPercent)
	assert.Equal(t, 50, dashboard.RequestTypes.InformacoesPercent)

	require.NotEmpty(t, dashboard.ActivityPeaks.Buckets)
	assert.Equal(t, domain.ActivityBucket{Label: "09:00 - 11:00", Count: 2}, dashboard.ActivityPeaks.Buckets[0])
	assert.False(t, dashboard.ActivityPeaks.Synthetic)

	assert.True(t, dashboard.Conversations.Available)
	assert.Equal(t, 2, dashboard.Procedures.TotalQuantity)
}

func TestService_GetDashboard_FalhaEmUmConjunto(t *testing.T) {
	service, source := newTestService(t)

	source.EXPECT().
		FetchMonthlySales(gomock.Any(), testFilter, "2024-03-01").
		Return(&domain.MonthlySalesMetrics{NewClients: 10}, nil)
	source.EXPECT().
		FetchConversationMetrics(gomock.Any(), testFilter, "2024-03-01").
		Return(nil, nil)
	source.EXPECT().
		FetchProcedureSales(gomock.Any(), testFilter).
		Return(nil, nil)
	source.EXPECT().
		FetchEvents(gomock.Any(), testFilter, testWindow.Start, testWindow.End).
		Return(nil, domain.NewSourceError(domain.DatasetEvents, errors.New("timeout")))
	source.EXPECT().
		FetchAppointmentsAndConversations(gomock.Any(), testFilter, testWindow.Start, testWindow.End).
		Return(nil, nil, nil)

	dashboard, err := service.GetDashboard(context.Background(), testFilter, &testReference)
	require.NoError(t, err)

	require.Len(t, dashboard.Warnings, 1)
	assert.Equal(t, domain.DatasetEvents, dashboard.Warnings[0].Dataset)
	assert.NotContains(t, dashboard.Warnings[0].Message, "timeout")
	assert.True(t, dashboard.Degraded())

	// eventos indisponíveis: faixas de exemplo
	assert.True(t, dashboard.ActivityPeaks.Synthetic)
	assert.Len(t, dashboard.ActivityPeaks.Buckets, 3)

	require.NotNil(t, dashboard.Funnel)
	assert.Equal(t, 10, dashboard.Funnel.NewLeads)
	assert.False(t, dashboard.Conversations.Available)
	assert.Equal(t, domain.RequestTypeBreakdown{}, dashboard.RequestTypes)
}

func TestService_GetDashboard_AvisosOrdenados(t *testing.T) {
	service, source := newTestService(t)
	failure := domain.NewSourceError(domain.DatasetMonthlySales, errors.New("conexão recusada"))

	source.EXPECT().FetchMonthlySales(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, failure)
	source.EXPECT().FetchConversationMetrics(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, failure)
	source.EXPECT().FetchProcedureSales(gomock.Any(), gomock.Any()).Return(nil, failure)
	source.EXPECT().FetchEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, failure)
	source.EXPECT().FetchAppointmentsAndConversations(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil, failure)

	dashboard, err := service.GetDashboard(context.Background(), testFilter, nil)
	require.NoError(t, err)

	datasets := make([]domain.Dataset, 0, len(dashboard.Warnings))
	for _, warning := range dashboard.Warnings {
		datasets = append(datasets, warning.Dataset)
	}
	assert.Equal(t, []domain.Dataset{
		domain.DatasetFunnelEvents,
		domain.DatasetConversationMetrics,
		domain.DatasetEvents,
		domain.DatasetMonthlySales,
		domain.DatasetProcedureSales,
	}, datasets)
	assert.Nil(t, dashboard.Funnel)
}

func TestService_GetDashboard_ContextoCancelado(t *testing.T) {
	service, source := newTestService(t)
	expectAllReads(source)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dashboard, err := service.GetDashboard(ctx, testFilter, nil)
	assert.Nil(t, dashboard)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestService_GetFunnel(t *testing.T) {
	t.Run("Sem métricas - nil", func(t *testing.T) {
		service, source := newTestService(t)
		source.EXPECT().FetchMonthlySales(gomock.Any(), testFilter, "2024-03-01").Return(nil, nil)
		source.EXPECT().FetchConversationMetrics(gomock.Any(), testFilter, "2024-03-01").Return(nil, nil)

		funnel, err := service.GetFunnel(context.Background(), testFilter, nil)
		assert.NoError(t, err)
		assert.Nil(t, funnel)
	})

	t.Run("Falha propaga SourceError", func(t *testing.T) {
		service, source := newTestService(t)
		source.EXPECT().
			FetchMonthlySales(gomock.Any(), testFilter, "2024-03-01").
			Return(nil, domain.NewSourceError(domain.DatasetMonthlySales, errors.New("conexão recusada")))
		source.EXPECT().
			FetchConversationMetrics(gomock.Any(), testFilter, "2024-03-01").
			Return(nil, nil).
			AnyTimes()

		funnel, err := service.GetFunnel(context.Background(), testFilter, nil)
		assert.Nil(t, funnel)
		assert.True(t, domain.IsSourceUnavailable(err))

		var sourceErr *domain.SourceError
		require.True(t, errors.As(err, &sourceErr))
		assert.Equal(t, domain.DatasetMonthlySales, sourceErr.Dataset)
	})
}

func TestService_GetActivityPeaks(t *testing.T) {
	t.Run("Opções do pedido substituem as configuradas", func(t *testing.T) {
		service, source := newTestService(t)
		source.EXPECT().
			FetchEvents(gomock.Any(), testFilter, testWindow.Start, testWindow.End).
			Return([]domain.EventRecord{
				{Timestamp: time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)},
				{Timestamp: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)},
				{Timestamp: time.Date(2024, 3, 2, 10, 30, 0, 0, time.UTC)},
			}, nil)

		peaks, err := service.GetActivityPeaks(context.Background(), testFilter, nil, domain.PeakOptions{BucketWidthHours: 1, Top: 1})
		require.NoError(t, err)
		assert.Equal(t, []domain.ActivityBucket{{Label: "10:00 - 11:00", Count: 2}}, peaks.Buckets)
	})

	for _, opts := range []domain.PeakOptions{{BucketWidthHours: 25}, {BucketWidthHours: -1}, {Top: 99}, {Top: -2}} {
		t.Run("Opções inválidas", func(t *testing.T) {
			service, _ := newTestService(t)

			_, err := service.GetActivityPeaks(context.Background(), testFilter, nil, opts)
			assert.True(t, domain.IsInvalidInput(err))
		})
	}
}

func TestService_OperaçõesIsoladas(t *testing.T) {
	service, source := newTestService(t)
	expectAllReads(source)

	requestTypes, err := service.GetRequestTypes(context.Background(), testFilter, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, requestTypes.Rebookings)
	assert.Equal(t, 3, requestTypes.ConversationsWithoutAppointment)

	conversations, err := service.GetConversations(context.Background(), testFilter, nil)
	require.NoError(t, err)
	assert.True(t, conversations.Available)
	assert.Equal(t, 100, conversations.Funnel.TotalConversations)

	procedures, err := service.GetProcedures(context.Background(), testFilter)
	require.NoError(t, err)
	require.Len(t, procedures.Procedures, 1)
	assert.True(t, decimal.NewFromInt(900).Equal(procedures.AverageTicket))
}

func TestService_GetConversations_SemLinha(t *testing.T) {
	service, source := newTestService(t)
	source.EXPECT().FetchConversationMetrics(gomock.Any(), testFilter, "2024-03-01").Return(nil, nil)

	conversations, err := service.GetConversations(context.Background(), testFilter, nil)
	require.NoError(t, err)
	assert.False(t, conversations.Available)
}
