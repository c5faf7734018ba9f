package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/vocabsrs/internal/scheduler"
	"github.com/example/vocabsrs/pkg/models"
)

func init() {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the periodic due-word scan until interrupted",
		Long: "Scan for the highest-priority words on an interval and print " +
			"each batch. Scans run only inside the configured hour window.",
		Run: runWatch,
	}
	RootCmd.AddCommand(cmd)
}

// consolePresenter prints each scheduled batch to stdout.
type consolePresenter struct{}

func (consolePresenter) Present(words []models.ItemRecord) error {
	fmt.Printf("-- %s: %d word(s) up for review\n", time.Now().Format("15:04"), len(words))
	printItems(words)
	return nil
}

func runWatch(cmd *cobra.Command, args []string) {
	eng, cfg, closer, err := openEngine()
	if err != nil {
		exitErr("open engine", err)
	}
	defer closer()

	sched := scheduler.New(eng, consolePresenter{}, newLogger(cfg), scheduler.Config{
		ScanInterval: time.Duration(cfg.Scheduler.ScanMinutes) * time.Minute,
		BatchSize:    cfg.Scheduler.BatchSize,
		StartHour:    cfg.Scheduler.StartHour,
		EndHour:      cfg.Scheduler.EndHour,
	})
	sched.Start()
	defer sched.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("shutting down")
}
