package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"fine-reconciliation/internal/domain"
	"fine-reconciliation/internal/gateway"
	"fine-reconciliation/internal/usecase"
)

func main() {
	// Define command-line flags
	apiURL := flag.String("api", getEnv("FINES_API_URL", "http://localhost:8080"), "Base URL of the library API")
	token := flag.String("token", getEnv("FINES_API_TOKEN", ""), "Bearer token for the library API")
	op := flag.String("op", "report", "Operation: report, waive, adjust, pay, receipt")
	bucket := flag.String("bucket", "all", "Report bucket: all, pending, paid, waived")
	user := flag.String("user", "", "Member id: report only this member's fines")
	fineID := flag.String("fine", "", "Fine id (adjust, pay)")
	issueID := flag.String("issue", "", "Book-issue id (waive)")
	amountStr := flag.String("amount", "", "Amount (adjust, pay)")
	method := flag.String("method", "", "Payment method: Cash, Card, Online, BankTransfer (pay)")
	reason := flag.String("reason", "", "Reason (waive, adjust)")
	notes := flag.String("notes", "", "Optional notes")
	paymentID := flag.String("payment", "", "Payment id (receipt)")
	rateStr := flag.String("rate", getEnv("FINES_DAILY_RATE", "1"), "Daily fine rate used when the API omits amounts")
	out := flag.String("out", "receipt.pdf", "Output file for receipt downloads")
	flag.Parse()

	rate, err := decimal.NewFromString(*rateStr)
	if err != nil {
		log.Fatalf("Error parsing daily rate: %v", err)
	}

	// --- Dependency Injection (Wiring the application) ---

	// 1. Create the API client (the outermost layer)
	client := gateway.NewClient(*apiURL, *token)

	// 2. Create the usecase components and inject the client
	normalizer := usecase.NewNormalizer(client, rate)
	loader := usecase.NewLoader(client, normalizer)
	lifecycle := usecase.NewLifecycle(client, loader)

	ctx := context.Background()

	switch *op {
	case "report":
		var fines []domain.Fine
		if *user != "" {
			fines = loader.LoadForUser(ctx, *user)
		} else {
			fines = loader.LoadAll(ctx)
		}
		printJSON(usecase.BuildReport(fines, domain.ParseBucket(*bucket), time.Now()))

	case "waive":
		fines, err := lifecycle.Waive(ctx, *issueID, *reason, *notes)
		if err != nil {
			log.Fatalf("Waive failed: %v", err)
		}
		printJSON(usecase.BuildReport(fines, domain.BucketWaived, time.Now()))

	case "adjust":
		amount := parseAmount(*amountStr)
		fines, err := lifecycle.Adjust(ctx, *fineID, amount, *reason)
		if err != nil {
			log.Fatalf("Adjust failed: %v", err)
		}
		printJSON(usecase.BuildReport(fines, domain.BucketAll, time.Now()))

	case "pay":
		amount := parseAmount(*amountStr)
		payment, _, err := lifecycle.Pay(ctx, *fineID, domain.PaymentRequest{
			Amount: amount,
			Method: domain.PaymentMethod(*method),
			Notes:  *notes,
		})
		if err != nil {
			log.Fatalf("Payment failed: %v", err)
		}
		printJSON(payment)

	case "receipt":
		blob, err := lifecycle.Receipt(ctx, *paymentID)
		if err != nil {
			log.Fatalf("Receipt download failed: %v", err)
		}
		if err := os.WriteFile(*out, blob, 0o644); err != nil {
			log.Fatalf("Failed to write receipt to %s: %v", *out, err)
		}
		fmt.Printf("Receipt written to %s (%d bytes)\n", *out, len(blob))

	default:
		fmt.Printf("Error: unknown operation %q.\n", *op)
		flag.Usage()
		os.Exit(1)
	}
}

func parseAmount(s string) decimal.Decimal {
	if s == "" {
		log.Fatal("Error: -amount is required for this operation.")
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		log.Fatalf("Error parsing amount: %v", err)
	}
	return amount
}

func printJSON(v any) {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to generate JSON output: %v", err)
	}
	fmt.Println(string(output))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
