package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/emrgen/cabinet/internal/config"
	"github.com/emrgen/cabinet/internal/jobs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cleanerCmd = &cobra.Command{
	Use:   "cleaner",
	Short: "retention cleaner",
}

func init() {
	cleanerCmd.AddCommand(cleanerRunCommand())
}

func cleanerRunCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "run",
		Short: "run the retention cleaner until interrupted",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.LoadConfig()
			cleaner := jobs.NewRecycleBinCleaner(recycleBin(cfg), cfg.CleanerSchedule)

			executor := jobs.NewTaskExecutor([]jobs.CronJob{cleaner})
			executor.Run()
			defer executor.Stop()

			logrus.Infof("retention cleaner running on schedule %s", cfg.CleanerSchedule)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop
		},
	}

	return command
}
