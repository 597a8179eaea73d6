package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/emrgen/cabinet/internal/cache"
	"github.com/emrgen/cabinet/internal/config"
	"github.com/emrgen/cabinet/internal/service"
	"github.com/emrgen/cabinet/internal/store"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "dashboard aggregates",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig()

		var statsCache service.StatsCache
		if cfg.RedisAddr != "" {
			statsCache = cache.NewRedis(cfg.RedisAddr)
		}

		dashboard := service.NewDashboardService(store.NewGormStore(config.GetDb(cfg)), statsCache)

		stats, err := dashboard.Stats(context.Background())
		if err != nil {
			color.Red("failed to load stats: %v", err)
			return
		}

		fmt.Printf("cabinets: %d  folders: %d  documents: %d  in bin: %d\n",
			stats.Cabinets, stats.Folders, stats.Documents, stats.Tombstoned)

		if len(stats.RecentActivity) == 0 {
			return
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"When", "Node", "Action", "Details", "By"})
		for _, entry := range stats.RecentActivity {
			table.Append([]string{
				entry.CreatedAt.Format("2006-01-02 15:04"),
				string(entry.NodeType),
				entry.Action,
				entry.Details,
				entry.UserID,
			})
		}
		table.Render()
	},
}
