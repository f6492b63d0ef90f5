package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkcode/mkcode/api"
	"github.com/mkcode/mkcode/config"
	"github.com/mkcode/mkcode/encode"
)

var version = "v0.1.0"

func main() {
	root := &cobra.Command{
		Use:   "mkcode",
		Short: "Barcode and QR code generator",
	}

	// --- serve command -------------------------------------------------------
	var configPath string
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the generator web service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to config file")
	root.AddCommand(serveCmd)

	// --- generate command ----------------------------------------------------
	var (
		genKind      string
		genSymbology string
		genScale     float64
		genBoxSize   int
		genOut       string
	)
	generateCmd := &cobra.Command{
		Use:   "generate [payload]",
		Short: "Encode a payload to a PNG file without running the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(args[0], genKind, genSymbology, genScale, genBoxSize, genOut)
		},
	}
	generateCmd.Flags().StringVarP(&genKind, "kind", "k", "barcode", "Code kind: barcode or qrcode")
	generateCmd.Flags().StringVarP(&genSymbology, "symbology", "s", "code128", "Barcode symbology")
	generateCmd.Flags().Float64Var(&genScale, "scale", 1.0, "Barcode scale factor")
	generateCmd.Flags().IntVar(&genBoxSize, "box-size", 2, "QR pixels per module")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "Output file (default barcode.png / qrcode.png)")
	root.AddCommand(generateCmd)

	// --- symbologies command -------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "symbologies",
		Short: "List supported barcode symbologies",
		Run: func(cmd *cobra.Command, args []string) {
			for _, sym := range encode.Symbologies() {
				fmt.Printf("%-10s %s\n", sym, sym.Label())
			}
		},
	})

	// --- version command -----------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mkcode %s\n", version)
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// runServe is the main service entrypoint that wires all components together.
func runServe(configPath string) error {
	// 1. Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Setup logger
	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)

	log.Info("starting mkcode", "version", version, "port", cfg.Port)

	// 3. Start HTTP server
	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: api.NewRouter(&api.Server{
			Log:     log,
			Version: version,
			Defaults: api.Defaults{
				BarcodeScale: cfg.BarcodeScale,
				QRBoxSize:    cfg.QRBoxSize,
			},
			StartTime: time.Now(),
		}),
		ReadTimeout:  cfg.ReadTimeout.Duration,
		WriteTimeout: cfg.WriteTimeout.Duration,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	log.Info("generator is running", "url", fmt.Sprintf("http://localhost:%d/", cfg.Port))

	// 4. Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	log.Info("goodbye")
	return nil
}

// runGenerate encodes a single payload and writes the PNG to a file.
func runGenerate(payload, kindStr, symStr string, scale float64, boxSize int, out string) error {
	kind, err := encode.ParseKind(kindStr)
	if err != nil {
		return err
	}

	var img *encode.Image
	switch kind {
	case encode.KindBarcode:
		sym, err := encode.ParseSymbology(symStr)
		if err != nil {
			return err
		}
		img, err = encode.Barcode(payload, sym, scale)
		if err != nil {
			return err
		}
		if out == "" {
			out = "barcode.png"
		}
	default:
		img, err = encode.QR(payload, boxSize)
		if err != nil {
			return err
		}
		if out == "" {
			out = "qrcode.png"
		}
	}

	if err := os.WriteFile(out, img.PNG, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	fmt.Printf("wrote %s (%dx%d)\n", out, img.Width, img.Height)
	return nil
}
