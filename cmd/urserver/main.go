// Command urserver serves a hot-seat game of Ur over HTTP.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/yourusername/urengine/internal/config"
	"github.com/yourusername/urengine/pkg/api"
	"github.com/yourusername/urengine/pkg/session"
)

const version = "0.1.0"

func main() {
	env, err := config.LoadServer()
	if err != nil {
		config.Exitf("config: %v", err)
	}

	// Flags default to the environment.
	host := flag.String("host", env.Host, "Host to bind to (use 0.0.0.0 for all interfaces)")
	port := flag.Int("port", env.Port, "Port to listen on")
	readTimeout := flag.Duration("read-timeout", env.ReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", env.WriteTimeout, "HTTP write timeout (0 keeps event streams open)")
	maxSims := flag.Int("max-simulations", env.MaxSimulations, "Max concurrent simulation requests")
	seed := flag.Int64("seed", env.Seed, "Dice seed (0 = random)")
	autoPass := flag.Bool("autopass", env.AutoPass, "Pass automatically when a roll has no legal move")
	verbose := flag.Bool("verbose", env.Verbose, "Log every game action")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("Ur API Server v%s\n", version)
		os.Exit(0)
	}

	log.Printf("Ur API Server v%s", version)

	sess, err := session.New(session.Options{
		Seed:     *seed,
		AutoPass: *autoPass,
		Verbose:  *verbose,
	})
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	log.Printf("Game %s ready", sess.ID())

	cfg := api.ServerConfig{
		Host:           *host,
		Port:           *port,
		ReadTimeout:    *readTimeout,
		WriteTimeout:   *writeTimeout,
		IdleTimeout:    env.IdleTimeout,
		MaxSimulations: *maxSims,
	}

	server := api.NewServer(sess, cfg, version)

	if err := server.ListenAndServeWithGracefulShutdown(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
