package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"FreshMall/config"
	"FreshMall/pkg/log"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	tasks := InitWorker(cfg)
	cliApp := &cli.App{
		Name: "task-worker",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start task consumer",
				Action: func(ctx *cli.Context) error {
					if err := tasks.Start(); err != nil {
						return err
					}
					log.L.Info("task worker started")

					c := make(chan os.Signal, 1)
					signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)
					<-c

					tasks.Stop()
					log.L.Info("task worker stopped")
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start worker", zap.Error(err))
	}
}
