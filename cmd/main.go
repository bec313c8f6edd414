package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"

	"crackTimeBackend/internal/adapter/db"
	"crackTimeBackend/internal/config"
	"crackTimeBackend/internal/core/advisor"
	"crackTimeBackend/internal/core/analyzer"
	"crackTimeBackend/internal/core/domain"
	"crackTimeBackend/internal/core/service"
	"crackTimeBackend/internal/pkg/metrics"
	"crackTimeBackend/internal/platform/terminal"
	"crackTimeBackend/internal/platform/web"
	"crackTimeBackend/internal/port"
	"crackTimeBackend/internal/utils/random"
)

func main() {
	root := &cli.Command{
		Name:  "cracktime",
		Usage: "Password crack-time estimation and security awareness tool",
		Commands: []*cli.Command{
			serveCommand(),
			analyzeCommand(),
			examplesCommand(),
			tipsCommand(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Value:   "config.yaml",
		Usage:   "path to the yaml config file",
		Sources: cli.EnvVars("CONFIG_PATH"),
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the analysis HTTP API",
		Flags: []cli.Flag{configFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			rules, err := config.LoadRuleSet(cfg)
			if err != nil {
				return err
			}

			reporter, err := metrics.NewReporter(cfg.Analysis.MetricsLogPath)
			if err != nil {
				return err
			}

			var repo port.Repository
			if cfg.Database.Enabled {
				repo, err = db.NewMySQLRepository(ctx, cfg.MySQLDSN())
				if err != nil {
					return fmt.Errorf("audit database: %w", err)
				}
				log.Printf("audit reports enabled (mysql %s:%d)", cfg.Database.Host, cfg.Database.Port)
			}

			adv := advisor.New(rules, random.New())
			svc := service.NewAnalysisService(repo, analyzer.New(rules), adv, reporter)
			defer svc.Close()

			router := gin.Default()
			handler := web.NewWebHandler(svc, adv)
			web.SetupRoutes(router, handler)

			log.Printf("listening on :%d", cfg.Server.Port)
			return router.Run(fmt.Sprintf(":%d", cfg.Server.Port))
		},
	}
}

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Analyze a single password and print the report",
		ArgsUsage: "<password>",
		Flags:     []cli.Flag{configFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			password := c.Args().First()
			if password == "" {
				return domain.ErrEmptyPassword
			}

			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			rules, err := config.LoadRuleSet(cfg)
			if err != nil {
				return err
			}

			adv := advisor.New(rules, random.New())
			svc := service.NewAnalysisService(nil, analyzer.New(rules), adv, nil)
			defer svc.Close()

			response, err := svc.AnalyzePassword(ctx, password)
			if err != nil {
				return err
			}

			terminal.Render(os.Stdout, response)
			return nil
		},
	}
}

func examplesCommand() *cli.Command {
	return &cli.Command{
		Name:  "examples",
		Usage: "Print example strong passwords",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "length", Value: 16, Usage: "target password length"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			adv := advisor.New(nil, random.New())
			for _, example := range adv.GenerateExamplePasswords(int(c.Int("length"))) {
				fmt.Println(example)
			}
			return nil
		},
	}
}

func tipsCommand() *cli.Command {
	return &cli.Command{
		Name:      "tips",
		Usage:     "Print password security tips, optionally for an industry",
		ArgsUsage: "[healthcare|finance|education|technology]",
		Action: func(ctx context.Context, c *cli.Command) error {
			adv := advisor.New(nil, random.New())
			industry := domain.Industry(c.Args().First())
			if industry == "" {
				industry = domain.IndustryGeneral
			}
			for _, tip := range adv.GetIndustrySpecificTips(industry) {
				fmt.Println("- " + tip)
			}
			return nil
		},
	}
}
