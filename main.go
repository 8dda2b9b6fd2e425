package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/zlnvch/deltaroom/api"
	"github.com/zlnvch/deltaroom/config"
	"github.com/zlnvch/deltaroom/store/memory"
	"github.com/zlnvch/deltaroom/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// All room and canvas state is in-memory and dies with the process.
	// Rooms are ephemeral; durability is not a goal.
	roomStore := memory.NewRoomStore(cfg.CanvasHistoryCap)

	shutdownCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	if cfg.RoomReapInterval > 0 {
		reaper := worker.NewReaper(roomStore, cfg.RoomReapInterval)
		go reaper.Run(shutdownCtx)
		log.Printf("Empty-room reaper enabled, interval %s", cfg.RoomReapInterval)
	}

	roomAPI := api.NewRoomAPI(roomStore, shutdownCtx)

	mux := http.NewServeMux()
	roomAPI.RegisterRoutes(mux, cfg.AllowedOrigin)

	log.Printf("Starting server on host port: %s", cfg.HostPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HostPort, mux))
}
