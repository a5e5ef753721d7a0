package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"vision-inspector/config"
	stream "vision-inspector/internal/api"
	app "vision-inspector/internal/application"
	"vision-inspector/internal/container"
	"vision-inspector/internal/domain/entity"
	"vision-inspector/internal/domain/port"
	"vision-inspector/internal/infrastructure/notify"
	"vision-inspector/internal/infrastructure/storage"
	"vision-inspector/internal/infrastructure/storage/sqlite"
	"vision-inspector/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Без камеры запускать цикл обработки нет смысла.
	camera, err := vision.OpenCamera(cfg.CameraIndex, cfg.CaptureWidth, cfg.CaptureHeight)
	if err != nil {
		log.Printf("Failed to open camera %d: %v", cfg.CameraIndex, err)
		fmt.Println("Exiting: the camera could not be initialized.")
		return
	}

	detector, err := vision.NewYOLODetector(cfg.ModelPath, cfg.ClassNames, cfg.ConfidenceThreshold, cfg.WorkingSize, cfg.WorkingSize)
	if err != nil {
		camera.Close()
		log.Fatalf("Failed to load detection model: %v", err)
	}

	sink := storage.NewDirectorySink(cfg.SnapshotDir)
	registry := storage.NewMemoryRegistry()

	var recorder port.EventRecorder
	if cfg.DatabasePath != "" {
		db, err := sqlite.New(cfg.DatabasePath)
		if err != nil {
			log.Printf("Snapshot log is disabled: %v", err)
		} else {
			defer db.Close()
			recorder = sqlite.NewEventRepository(db)
		}
	}

	var notifier port.Notifier
	if cfg.TelegramToken != "" {
		tg, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("Telegram alerts are disabled: %v", err)
		} else {
			notifier = tg
		}
	}

	var display port.Display = vision.NewWindow(cfg.WindowName)
	if cfg.StreamPort > 0 {
		hub := stream.NewHub(cfg.StreamPort)
		if err := hub.Start(); err != nil {
			log.Printf("Live view is disabled: %v", err)
		} else {
			display = app.NewMultiDisplay(display, hub)
		}
	}

	appContainer := container.New(
		camera,
		detector,
		vision.NewMatAnnotator(),
		display,
		sink,
		registry,
		recorder,
		notifier,
		app.SessionConfig{
			Flagged:       entity.NewClassSet(cfg.FlaggedClasses...),
			Palette:       entity.DefaultPalette(),
			WorkingWidth:  cfg.WorkingSize,
			WorkingHeight: cfg.WorkingSize,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer appContainer.Session.Close()

	log.Println("Vision inspector is running...")
	if err := appContainer.Session.Run(ctx); err != nil {
		log.Fatalf("Session error: %v", err)
	}
}
