package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func stringPtr(s string) *string {
	return &s
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db, mock
}

var monthlyColumns = []string{
	"tenant_id", "employee_id", "month", "new_leads_today", "appointments_today", "conversion_rate",
	"leads_trend", "appointments_trend", "leads_whatsapp", "leads_instagram", "leads_email", "leads_phone",
	"new_clients", "distinct_clients",
}

func TestMonthlySalesMetricsRepository_GetByMonth(t *testing.T) {
	month := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filter   domain.MetricFilter
		query    string
		args     []driver.Value
		rows     *sqlmock.Rows
		queryErr error
		validate func(t *testing.T, result *domain.MonthlySalesMetrics, err error)
	}{
		{
			name:   "Sem funcionária - usa a linha agregada da empresa",
			filter: domain.MetricFilter{TenantID: "tenant-1"},
			query:  "FROM monthly_sales_metrics msm WHERE msm.month = $1 AND msm.tenant_id = $2 AND msm.employee_id IS NULL",
			args:   []driver.Value{"2024-03-01", "tenant-1"},
			rows: sqlmock.NewRows(monthlyColumns).
				AddRow("tenant-1", nil, month, 4, 2, nil, 10.5, -3.0, 20, 8, 1, 1, 30, 55),
			validate: func(t *testing.T, result *domain.MonthlySalesMetrics, err error) {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Nil(t, result.EmployeeID)
				assert.Nil(t, result.ConversionRate)
				assert.Equal(t, 30, result.NewClients)
				assert.Equal(t, 55, result.DistinctClients)
				assert.Equal(t, domain.ChannelCounts{WhatsApp: 20, Instagram: 8, Email: 1, Phone: 1}, result.LeadsByChannel)
				assert.Equal(t, -3.0, result.AppointmentsTrend)
			},
		},
		{
			name:   "Com funcionária",
			filter: domain.MetricFilter{TenantID: "tenant-1", EmployeeID: stringPtr("emp-9")},
			query:  "WHERE msm.month = $1 AND msm.tenant_id = $2 AND msm.employee_id = $3",
			args:   []driver.Value{"2024-03-01", "tenant-1", "emp-9"},
			rows: sqlmock.NewRows(monthlyColumns).
				AddRow("tenant-1", "emp-9", month, 1, 1, 22.5, 0.0, 0.0, 1, 0, 0, 0, 3, 3),
			validate: func(t *testing.T, result *domain.MonthlySalesMetrics, err error) {
				require.NoError(t, err)
				require.NotNil(t, result)
				require.NotNil(t, result.EmployeeID)
				assert.Equal(t, "emp-9", *result.EmployeeID)
				require.NotNil(t, result.ConversionRate)
				assert.Equal(t, 22.5, *result.ConversionRate)
			},
		},
		{
			name:   "Sem linha - retorna nil sem erro",
			filter: domain.MetricFilter{TenantID: "tenant-1"},
			query:  "FROM monthly_sales_metrics msm",
			args:   []driver.Value{"2024-03-01", "tenant-1"},
			rows:   sqlmock.NewRows(monthlyColumns),
			validate: func(t *testing.T, result *domain.MonthlySalesMetrics, err error) {
				assert.NoError(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name:     "Erro do banco é propagado",
			filter:   domain.MetricFilter{TenantID: "tenant-1"},
			query:    "FROM monthly_sales_metrics msm",
			args:     []driver.Value{"2024-03-01", "tenant-1"},
			queryErr: errors.New("conexão recusada"),
			validate: func(t *testing.T, result *domain.MonthlySalesMetrics, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "conexão recusada")
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewMonthlySalesMetricsRepository(db)

			expectation := mock.ExpectQuery(regexp.QuoteMeta(tt.query)).WithArgs(tt.args...)
			if tt.queryErr != nil {
				expectation.WillReturnError(tt.queryErr)
			} else {
				expectation.WillReturnRows(tt.rows)
			}

			result, err := repo.GetByMonth(context.Background(), tt.filter, "2024-03-01")
			tt.validate(t, result, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMonthlySalesMetricsRepository_SaveOrUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMonthlySalesMetricsRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO monthly_sales_metrics")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveOrUpdate(context.Background(), &domain.MonthlySalesMetrics{
		TenantID: "tenant-1",
		Month:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationMetricsRepository_GetByMonth(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConversationMetricsRepository(db)

	columns := []string{
		"tenant_id", "employee_id", "month", "total_conversations", "conversations_with_appointment",
		"appointment_conversion_rate", "avg_first_response_seconds", "fast_response_rate",
		"whatsapp_conversations", "instagram_conversations", "email_conversations", "phone_conversations",
		"satisfaction_average", "avg_resolution_minutes",
	}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE cm.month = $1 AND cm.tenant_id = $2 AND cm.employee_id IS NULL LIMIT 1")).
		WithArgs("2024-03-01", "tenant-1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("tenant-1", nil, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 50, 10, nil, 240.0, 70.0, 30, 10, 5, 5, 4.2, 15.0))

	result, err := repo.GetByMonth(context.Background(), domain.MetricFilter{TenantID: "tenant-1"}, "2024-03-01")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 50, result.TotalConversations)
	assert.Nil(t, result.AppointmentConversionRate)
	assert.Equal(t, domain.ChannelCounts{WhatsApp: 30, Instagram: 10, Email: 5, Phone: 5}, result.Channels)
	assert.Equal(t, 4.2, result.SatisfactionAverage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcedureSalesMetricsRepository_ListByTenant(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProcedureSalesMetricsRepository(db)

	month := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM procedure_sales_metrics psm WHERE psm.tenant_id = $1 ORDER BY psm.total_revenue DESC, psm.procedure_name ASC")).
		WithArgs("tenant-1").
		WillReturnRows(sqlmock.NewRows([]string{"tenant_id", "month", "procedure_name", "quantity", "total_revenue", "average_ticket"}).
			AddRow("tenant-1", month, "Botox", 5, "4500.00", "900.00").
			AddRow("tenant-1", month, "Limpeza", 10, "1500.00", "150.00"))

	result, err := repo.ListByTenant(context.Background(), domain.MetricFilter{TenantID: "tenant-1", EmployeeID: stringPtr("emp-1")})
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "Botox", result[0].Procedure)
	assert.True(t, decimal.NewFromInt(4500).Equal(result[0].TotalRevenue))
	assert.True(t, decimal.NewFromInt(150).Equal(result[1].AverageTicket))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_ListAppointments(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments a WHERE a.created_at >= $1 AND a.created_at <= $2 AND a.tenant_id = $3 ORDER BY a.created_at ASC")).
		WithArgs(start, end, "tenant-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "created_at"}).
			AddRow("apt-1", "conv-1", start.Add(time.Hour)).
			AddRow("apt-2", nil, start.Add(2*time.Hour)))

	result, err := repo.ListAppointments(context.Background(), domain.MetricFilter{TenantID: "tenant-1"}, start, end)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.True(t, result[0].FromConversation())
	assert.False(t, result[1].FromConversation())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_ListEvents_ComFuncionaria(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)

	mock.ExpectQuery(regexp.QuoteMeta("FROM messages m WHERE m.created_at >= $1 AND m.created_at <= $2 AND m.tenant_id = $3 AND m.employee_id = $4")).
		WithArgs(start, end, "tenant-1", "emp-1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "source_category"}).
			AddRow(start.Add(9*time.Hour), "whatsapp").
			AddRow(start.Add(10*time.Hour), nil))

	result, err := repo.ListEvents(context.Background(), domain.MetricFilter{TenantID: "tenant-1", EmployeeID: stringPtr("emp-1")}, start, end)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "whatsapp", result[0].SourceCategory)
	assert.Equal(t, "", result[1].SourceCategory)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_ListConversations_ErroNaQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM conversations c")).
		WillReturnError(errors.New("timeout"))

	result, err := repo.ListConversations(context.Background(), domain.MetricFilter{}, time.Now(), time.Now())
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
