package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/avelik/hotel_ledger/internal/adapter/cli"
	"github.com/avelik/hotel_ledger/internal/adapter/repository/file"
	"github.com/avelik/hotel_ledger/internal/core/services"
	"github.com/avelik/hotel_ledger/internal/platform/config"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()

	repo := file.NewLedgerRepository(cfg.DataFile)
	svc := services.NewHotelService(repo)

	svc.InitializeInventory()
	if err := svc.Restore(ctx); err != nil {
		log.Fatalf("Failed to restore ledger: %v", err)
	}

	menu := cli.NewMenu(svc, os.Stdin, os.Stdout)

	done := make(chan error, 1)
	go func() {
		done <- menu.Run(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil {
			log.Fatalf("Menu exited with error: %v", err)
		}
	case <-quit:
		// The ledger only persists on the exit command; an interrupt drops
		// everything since the last save, same as a crash.
		log.Println("Interrupted. Changes since the last save are lost.")
	}
}
