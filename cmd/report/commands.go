package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/metricsource"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type dashboardOptions struct {
	month    string
	tenant   string
	employee string
	source   string
}

// configLoader permite trocar a leitura do .env/ambiente nos testes
type configLoader func() (*config.Config, error)

func newRootCmd(out io.Writer, loadConfig configLoader) *cobra.Command {
	root := &cobra.Command{
		Use:           "report",
		Short:         "Calcula o dashboard de vendas pelo terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	root.AddCommand(newDashboardCmd(loadConfig), newClassifyCmd())

	return root
}

func newDashboardCmd(loadConfig configLoader) *cobra.Command {
	opts := dashboardOptions{}

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Imprime o dashboard completo de um mês em JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd.Context(), cmd.OutOrStdout(), loadConfig, opts)
		},
	}

	cmd.Flags().StringVar(&opts.month, "month", "", "Mês de referência (AAAA-MM ou AAAA-MM-DD); vazio usa o mês atual")
	cmd.Flags().StringVar(&opts.tenant, "tenant", "", "Empresa (tenant_id)")
	cmd.Flags().StringVar(&opts.employee, "employee", "", "Funcionária (opcional)")
	cmd.Flags().StringVar(&opts.source, "source", "", "Fonte das métricas: live ou fixture; vazio usa METRIC_SOURCE")
	_ = cmd.MarkFlagRequired("tenant")

	return cmd
}

func runDashboard(ctx context.Context, out io.Writer, loadConfig configLoader, opts dashboardOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if opts.source != "" {
		cfg.MetricSource.Kind = strings.ToLower(strings.TrimSpace(opts.source))
	}

	var queryer postgres.Queryer
	if cfg.MetricSource.Kind == config.MetricSourceLive {
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}
		defer conn.Close()
		queryer = conn
	}

	source, err := metricsource.New(cfg, queryer, nil)
	if err != nil {
		return err
	}

	reference, err := domain.ParseMonthReference(opts.month, cfg.Dashboard.Location)
	if err != nil {
		return err
	}

	filter := domain.MetricFilter{TenantID: strings.TrimSpace(opts.tenant)}
	if filter.TenantID == "" {
		return domain.NewInputError("tenant", "empresa obrigatória")
	}
	if employee := strings.TrimSpace(opts.employee); employee != "" {
		if err := domain.ValidateEmployeeID(employee); err != nil {
			return err
		}
		filter.EmployeeID = &employee
	}

	dashboard, err := analyzing.NewService(cfg, source, nil).GetDashboard(ctx, filter, reference)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, utils.PrettyJson(dashboard))
	return err
}

func newClassifyCmd() *cobra.Command {
	classify := &cobra.Command{
		Use:   "classify",
		Short: "Mostra a classificação usada no dashboard para um valor",
	}

	classify.AddCommand(
		&cobra.Command{
			Use:   "conversion <taxa>",
			Short: "Classifica uma taxa de conversão (percentual)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				rate, err := parseNumber("taxa", args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), domain.ClassifyConversionQuality(rate))
				return err
			},
		},
		&cobra.Command{
			Use:   "response <segundos>",
			Short: "Classifica o tempo médio da primeira resposta",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				seconds, err := parseNumber("segundos", args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), domain.ClassifyResponseTime(seconds))
				return err
			},
		},
	)

	return classify
}

func parseNumber(field, raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(raw), ",", "."), 64)
	if err != nil {
		return 0, domain.NewInputError(field, fmt.Sprintf("número inválido %q", raw))
	}
	return value, nil
}
