package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/shopspring/decimal"

	"fine-reconciliation/internal/gateway"
	"fine-reconciliation/internal/server"
	"fine-reconciliation/internal/usecase"
)

func main() {
	listenAddr := flag.String("listen", getEnv("FINES_LISTEN_ADDR", ":8090"), "Address to listen on")
	apiURL := flag.String("api", getEnv("FINES_API_URL", "http://localhost:8080"), "Base URL of the library API")
	token := flag.String("token", getEnv("FINES_API_TOKEN", ""), "Bearer token for the library API")
	jwtSecret := flag.String("jwt-secret", getEnv("FINES_JWT_SECRET", ""), "HMAC secret for session tokens")
	rateStr := flag.String("rate", getEnv("FINES_DAILY_RATE", "1"), "Daily fine rate used when the API omits amounts")
	flag.Parse()

	if *jwtSecret == "" {
		log.Fatal("Error: -jwt-secret (or FINES_JWT_SECRET) is required.")
	}

	rate, err := decimal.NewFromString(*rateStr)
	if err != nil {
		log.Fatalf("Error parsing daily rate: %v", err)
	}

	client := gateway.NewClient(*apiURL, *token)
	normalizer := usecase.NewNormalizer(client, rate)
	loader := usecase.NewLoader(client, normalizer)
	lifecycle := usecase.NewLifecycle(client, loader)

	srv := server.New(loader, lifecycle, *jwtSecret)

	log.Printf("Fine dashboard API listening on %s (upstream %s)", *listenAddr, *apiURL)
	log.Fatal(http.ListenAndServe(*listenAddr, srv.Handler()))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
