package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/michael-petrov-cpoms/velociraptor/internal/config"
	"github.com/michael-petrov-cpoms/velociraptor/internal/logging"
	"github.com/michael-petrov-cpoms/velociraptor/internal/mcp"
	"github.com/michael-petrov-cpoms/velociraptor/internal/planning"
	"github.com/michael-petrov-cpoms/velociraptor/internal/store"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig

	teamStore *store.Store
	planner   *planning.Service
)

var rootCmd = &cobra.Command{
	Use:   "velociraptor",
	Short: "Velociraptor recommends sprint commitments from historical velocity",
	Long: `Velociraptor tracks a team's completed sprints, normalizes each one for
planned leave, and recommends how many points to commit to in the next sprint.
Run without a subcommand it serves its tools over MCP Stdio.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		teamStore = store.New(cfg.DataPath)
		if err := teamStore.Load(); err != nil {
			log.Fatal().Err(err).Msg("Failed to load team store")
		}
		planner = planning.NewService(teamStore)

		log.Debug().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("velociraptor starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		log.Info().Msg("MCP Server starting Stdio loop")
		server := mcp.NewServer(teamStore, cfg.EnableMermaidCharts)
		if err := server.Serve(); err != nil {
			log.Fatal().Err(err).Msg("MCP server terminated")
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
