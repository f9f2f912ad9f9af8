package cmd

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/velora-store/velora/internal/cart"
	"github.com/velora-store/velora/internal/config"
	"github.com/velora-store/velora/internal/database"
	"github.com/velora-store/velora/internal/logx"
	"github.com/velora-store/velora/internal/order"
	"github.com/velora-store/velora/internal/server"
)

var noRedis bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Velora storefront server",
	Long: `Start the Velora storefront server which provides:
- REST API for the product catalog and faceted filtering
- Session carts with coupon pricing backed by Redis
- Checkout with order creation and WhatsApp handoff`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&noRedis, "no-redis", false, "Keep cart snapshots in memory instead of Redis")
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 Velora Storefront Starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logx.Init(cfg.Environment)

	fmt.Println("🔌 Connecting to database...")
	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	fmt.Println("✅ Database connected successfully")

	var snapshots cart.SnapshotStore
	if noRedis {
		fmt.Println("🧺 Using in-memory cart snapshots")
		snapshots = cart.NewMemorySnapshotStore()
	} else {
		fmt.Println("🧺 Connecting to Redis for cart snapshots...")
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("failed to parse redis url: %w", err)
		}
		snapshots = cart.NewRedisSnapshotStore(redis.NewClient(opts), cfg.Redis.CartTTL)
	}

	carts := cart.NewStore(snapshots, func(cartID string) {
		logx.Debug().Str("cart_id", cartID).Msg("item added to cart")
	})
	composer := order.NewComposer(cfg.Store.MessagingBaseURL, cfg.Store.WhatsAppNumber)

	fmt.Println("⚙️  Setting up server...")
	srv := server.NewServer(db, carts, composer)

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
