// main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/handlers"
	"github.com/spf13/cobra"

	"go-user-tasks/api"
	"go-user-tasks/models"
	"go-user-tasks/storage"
)

const defaultPort = 4000

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		port        int
		logRequests bool
	)
	cmd := &cobra.Command{
		Use:          "usertasks",
		Short:        "Serve the in-memory users and tasks collections over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := listenAddr(port, cmd.Flags().Changed("port"), os.Getenv("PORT"))
			if err != nil {
				return err
			}
			return serve(addr, logRequests)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", defaultPort, "port to listen on (overrides $PORT)")
	cmd.Flags().BoolVar(&logRequests, "log-requests", true, "write an access log line per request to stdout")
	return cmd
}

// listenAddr resolves the port: an explicit --port wins, then $PORT, then the
// flag default.
func listenAddr(port int, portSet bool, env string) (string, error) {
	if !portSet && env != "" {
		p, err := strconv.Atoi(env)
		if err != nil || p < 0 || p > 65535 {
			return "", fmt.Errorf("invalid PORT %q", env)
		}
		port = p
	}
	return fmt.Sprintf(":%d", port), nil
}

func serve(addr string, logRequests bool) error {
	userStorage := storage.NewUserStorage(models.SeedUsers())
	defer userStorage.Close()
	taskStorage := storage.NewTaskStorage(models.SeedTasks())
	defer taskStorage.Close()

	var h http.Handler = api.NewServer(userStorage, taskStorage).Routes()
	if logRequests {
		h = handlers.CombinedLoggingHandler(os.Stdout, h)
	}

	log.Printf("Server is listening on %s", addr)
	return http.ListenAndServe(addr, h)
}
