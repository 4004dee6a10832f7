package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	loadConfig := func() (*config.Config, error) {
		cfg, err := config.NewConfig()
		if err != nil {
			return nil, err
		}
		log.Setup(cfg.App.LogLevel)
		return cfg, nil
	}

	if err := newRootCmd(os.Stdout, loadConfig).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}
