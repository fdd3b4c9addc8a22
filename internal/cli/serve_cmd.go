package cli

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/dkarlsen/fitquest/internal/db"
	"github.com/dkarlsen/fitquest/internal/ledger"
	"github.com/dkarlsen/fitquest/internal/logger"
	"github.com/dkarlsen/fitquest/internal/repository"
	"github.com/dkarlsen/fitquest/internal/server"
	"github.com/dkarlsen/fitquest/internal/service"
)

func newServeCmd() *cobra.Command {
	var addr string
	var dbPath string
	var seed int64
	var logMode string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the gamified mission API",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(logMode)
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			defer log.Sync()

			if dbPath == "" {
				dbPath = os.Getenv("FITQUEST_DB")
			}
			if dbPath == "" {
				dbPath = ":memory:"
			}
			database, err := db.OpenDB(dbPath)
			if err != nil {
				return fmt.Errorf("opening user store: %w", err)
			}
			defer database.Close()

			var rng *rand.Rand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewSource(seed))
			}

			users := service.NewUserService(
				repository.NewSQLiteUserRepo(database),
				ledger.New(ledger.DefaultAchievements()),
				rng,
			)

			gin.SetMode(gin.ReleaseMode)
			router := server.NewRouter(server.RouterConfig{Log: log, Users: users})

			log.Infow("listening", "addr", addr, "store", dbPath)
			return router.Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&dbPath, "db", "", "User store path (default in-memory)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for mission flavor selection (reproducible plans)")
	cmd.Flags().StringVar(&logMode, "log", "dev", "Log mode: dev or prod")

	return cmd
}
