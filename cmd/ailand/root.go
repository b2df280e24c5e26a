package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/VaibhavSomanna/AI-land/internal/app"
	"github.com/VaibhavSomanna/AI-land/internal/config"
	"github.com/VaibhavSomanna/AI-land/internal/exercise"
	"github.com/VaibhavSomanna/AI-land/internal/server"
	"github.com/VaibhavSomanna/AI-land/internal/session"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var exerciseFlag string

	rootCmd := &cobra.Command{
		Use:           "ailand",
		Short:         "AI fitness trainer that counts exercise reps from your webcam",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrainer(configFlag, exerciseFlag)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVarP(&exerciseFlag, "exercise", "e", string(exercise.ShoulderPress),
		"Exercise to track (shoulder_press, bicep_curl, alternating_bicep_curl, tricep_kickback)")

	rootCmd.AddCommand(newExercisesCommand())
	rootCmd.AddCommand(newHistoryCommand(&configFlag))
	rootCmd.AddCommand(newReportCommand(&configFlag))
	rootCmd.AddCommand(newConfigCommand(&configFlag))

	return rootCmd
}

// runTrainer is the main entry point: it acquires the single-instance lock,
// opens workout history, optionally starts the HTTP server, and hands
// control to the frame loop.
func runTrainer(configPath, exerciseName string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dataDir := config.ExpandPath(cfg.Storage.DataDir)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	// A second trainer instance would fight over the camera.
	lock := flock.New(filepath.Join(dataDir, "ailand.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another trainer instance is already running")
	}
	defer lock.Unlock()

	store, err := session.New(filepath.Join(dataDir, "sessions.db"))
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer store.Close()

	hub := server.NewHub()

	a, err := app.New(cfg, app.Options{
		Exercise: exercise.Kind(exerciseName),
		Store:    store,
		Hub:      hub,
	})
	if err != nil {
		return err
	}

	if cfg.Server.Enabled {
		srv := server.New(server.Config{Store: store, Hub: hub})
		go func() {
			log.Printf("HTTP server listening on %s", cfg.Server.Bind)
			if err := srv.ListenAndServe(cfg.Server.Bind); err != nil {
				log.Printf("HTTP server stopped: %v", err)
			}
		}()
	}

	return a.Run()
}

// openStore opens the session database read-side for the reporting commands.
func openStore(configPath string) (*session.Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	dbPath := filepath.Join(config.ExpandPath(cfg.Storage.DataDir), "sessions.db")
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("no workout history at %s (run a session first)", dbPath)
	}
	return session.New(dbPath)
}
