package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"

	"bloodlink/auth"
	"bloodlink/httpapi"
	"bloodlink/internal"
	"bloodlink/moderation"
	"bloodlink/repositories"
	"bloodlink/runtime"
	"bloodlink/services"
	"bloodlink/socket"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so every defer executes before exit.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := internal.NewLogger(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Persistence Gateway
	store, err := repositories.NewStore(ctx, config.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer func() {
		log.Info("Closing database pool...")
		store.Close()
	}()

	users := repositories.NewUserRepository(store)
	requests := repositories.NewRequestRepository(store)
	responses := repositories.NewResponseRepository(store)
	messages := repositories.NewMessageRepository(store)

	// 4. Moderation (disabled when no word list is configured)
	moderator, err := loadModerator(config)
	if err != nil {
		return fmt.Errorf("moderation setup failed: %w", err)
	}

	// 5. Coordination core
	registry := runtime.NewRegistry(log)
	resolver := auth.NewResolver(auth.NewCodec(config.JWTSecret), users)
	requestService := services.NewRequestService(log, requests, responses, users, registry)
	chatService := services.NewChatService(log, requests, responses, messages, registry,
		moderator, config.ChatHistoryLimit)

	// 6. Transports
	mux := http.NewServeMux()
	mux.Handle("/ws", socket.NewServer(log, resolver, registry, requestService, chatService,
		config.ConnectionBufferSize))
	httpapi.NewServer(log, resolver, requestService).Register(mux)

	if config.DebugPort != nil {
		internal.StartDebugServer(*config.DebugPort)
	}

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &http.Server{Addr: address, Handler: mux}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting server", "address", address, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	log.Info("Program stopped cleanly")

	return nil
}

// loadModerator reads the censored word list, one word per line. A missing
// configuration disables moderation entirely.
func loadModerator(config Config) (*moderation.Moderator, error) {
	if config.CensoredWordsFile == "" {
		return nil, nil
	}

	content, err := os.ReadFile(config.CensoredWordsFile)
	if err != nil {
		return nil, err
	}

	var words []string
	for _, line := range strings.Split(string(content), "\n") {
		if word := strings.TrimSpace(line); word != "" {
			words = append(words, word)
		}
	}

	mask, err := internal.CharacterRune(config.ModerationCharReplacement)
	if err != nil {
		return nil, err
	}
	return moderation.New(words, mask)
}
