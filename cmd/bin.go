package cmd

import (
	"context"
	"os"

	"github.com/emrgen/cabinet/internal/compress"
	"github.com/emrgen/cabinet/internal/config"
	"github.com/emrgen/cabinet/internal/service"
	"github.com/emrgen/cabinet/internal/storage"
	"github.com/emrgen/cabinet/internal/store"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var binCmd = &cobra.Command{
	Use:   "bin",
	Short: "recycle bin commands",
}

func init() {
	binCmd.AddCommand(binListCommand())
	binCmd.AddCommand(binRestoreCommand())
	binCmd.AddCommand(binPurgeCommand())
}

func recycleBin(cfg *config.Config) *service.RecycleBinService {
	gormStore := store.NewGormStore(config.GetDb(cfg))
	providers := storage.NewRegistry(storage.NewDisk(cfg.StorageRoot), storage.NewWORMDisk(cfg.WORMRoot))
	return service.NewRecycleBinService(gormStore, providers, compress.NewGZip(),
		service.NewStoreSink(gormStore), cfg.Retention)
}

func binListCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "list",
		Short: "list tombstoned nodes",
		Run: func(cmd *cobra.Command, args []string) {
			bin := recycleBin(config.LoadConfig())

			entries, err := bin.List(context.Background())
			if err != nil {
				color.Red("failed to list recycle bin: %v", err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Type", "Name", "Original Path", "Deleted By", "Deleted At", "Expires At"})
			for _, entry := range entries {
				table.Append([]string{
					entry.ID,
					string(entry.NodeType),
					entry.NodeName,
					entry.OriginalPath,
					entry.DeletedBy,
					entry.DeletedAt.Format("2006-01-02 15:04"),
					entry.ExpiresAt.Format("2006-01-02 15:04"),
				})
			}
			table.Render()
		},
	}

	return command
}

func binRestoreCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "restore <tombstone-id>",
		Short: "restore a tombstoned node",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id, err := uuid.Parse(args[0])
			if err != nil {
				color.Red("invalid tombstone id: %v", err)
				return
			}

			bin := recycleBin(config.LoadConfig())

			entry, err := bin.Restore(context.Background(), id, actorContext())
			if err != nil {
				color.Red("failed to restore: %v", err)
				return
			}

			color.Green("restored %s to %s", entry.NodeName, entry.OriginalPath)
		},
	}

	return command
}

func binPurgeCommand() *cobra.Command {
	var expired bool
	command := &cobra.Command{
		Use:   "purge",
		Short: "purge expired tombstones",
		Run: func(cmd *cobra.Command, args []string) {
			if !expired {
				color.Red("missing: --expired")
				return
			}

			bin := recycleBin(config.LoadConfig())

			purged, err := bin.PurgeExpired(context.Background())
			if err != nil {
				color.Red("failed to purge: %v", err)
				return
			}

			color.Green("purged %d tombstones", purged)
		},
	}

	command.Flags().BoolVar(&expired, "expired", false, "purge every tombstone past its retention window")

	return command
}
