package main

import (
	"fmt"
	championservice "lolookup/api/services/champion"
	"lolookup/fetcher/assets"
	"lolookup/pkg/config"
	"lolookup/pkg/database"
	"lolookup/pkg/logger"
	"lolookup/pkg/storage"
	"os"

	"github.com/spf13/cobra"
)

var (
	force    bool
	language string
)

var rootCmd = &cobra.Command{
	Use:   "revalidator",
	Short: "Reload the champion catalog from the static data",
	Long: `Loads the champion catalog into the database and stores the champion images.
Without --force the stored catalog is kept when it isn't empty.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVar(&force, "force", false, "Reload even when the catalog is already stored")
	rootCmd.Flags().StringVar(&language, "language", "", "Static data language, defaults to DDRAGON_LANGUAGE")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.NewConsole(cfg.LogLevel)

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}

	if language == "" {
		language = cfg.Language
	}

	service := championservice.NewChampionService(&championservice.ChampionServiceDeps{
		DB: db,
		Assets: assets.NewAssetFetcher(&assets.AssetFetcherDeps{
			Store:  storage.NewImageStore(cfg),
			Logger: log,
		}),
		Language: language,
		Logger:   log,
	})

	ctx := cmd.Context()
	count, err := service.ChampionRepository.Count(ctx)
	if err != nil {
		return fmt.Errorf("couldn't count the stored champions: %w", err)
	}

	if count > 0 && !force {
		log.Info().Int64("count", count).Msg("Champion catalog already stored, use --force to reload")
		return nil
	}

	result, err := service.UpdateChampions(ctx)
	if err != nil {
		return err
	}

	log.Info().Str("version", result.Version).Msg(result.Message)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't revalidate the champion catalog: %s\n", err)
		os.Exit(1)
	}
}
