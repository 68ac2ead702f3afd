package cli

import (
	"fmt"
	"net"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/namesetl/internal/api"
	"github.com/vvka-141/namesetl/internal/db"
	"github.com/vvka-141/namesetl/internal/logging"
	"github.com/vvka-141/namesetl/internal/store"
	"github.com/vvka-141/namesetl/pkg/namesetl"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the store over HTTP",
	Long: `Serve exposes the store as a small JSON API until interrupted:

  GET    /healthz
  GET    /records
  GET    /records/{id}
  POST   /records
  PUT    /records/{id}
  DELETE /records/{id}

Examples:
  namesetl serve
  namesetl serve --addr 127.0.0.1:9000 --db names.db`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

type serveFlagValues struct {
	addr string
}

var serveFlags serveFlagValues

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveFlags.addr, "addr", "",
		"Listen address\n"+
			"Precedence: --addr > $NAMESETL_ADDR > server.addr in namesetl.yaml > :8080")
}

func runServe(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	addr := settings.Addr
	if serveFlags.addr != "" {
		addr = serveFlags.addr
	}

	ctx, cancel := signalContext(0)
	defer cancel()

	conn, err := db.Open(ctx, settings.StorePath)
	if err != nil {
		return &namesetl.StoreError{Op: "open", Path: settings.StorePath, Err: err}
	}
	defer conn.Close()

	logger := logging.NewConsoleLogger(verbose)
	server := api.NewServer(store.NewRepository(conn, settings.StorePath), logger)

	return server.ListenAndServe(ctx, addr, func(a net.Addr) {
		fmt.Fprintf(os.Stderr, "Serving %s on http://%s (Ctrl+C to stop)\n", settings.StorePath, a)
	})
}
