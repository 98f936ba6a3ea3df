package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"ledger-copilot/internal/handlers"
	"ledger-copilot/internal/services"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errMissingSecret = errors.New("webhook secret is empty: pass --secret or set PLAID_WEBHOOK_SECRET")

func webhookSecret(cmd *cobra.Command) (string, error) {
	secret, _ := cmd.Flags().GetString("secret")
	if secret == "" {
		secret = viper.GetString("PLAID_WEBHOOK_SECRET")
	}
	if secret == "" {
		return "", errMissingSecret
	}
	return secret, nil
}

func signWebhookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign-webhook <payload-file|->",
		Short: "Print the signature header value for a webhook body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := webhookSecret(cmd)
			if err != nil {
				return err
			}

			var body []byte
			if args[0] == "-" {
				body, err = io.ReadAll(cmd.InOrStdin())
			} else {
				body, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read payload: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), services.SignPayload(secret, body))
			return nil
		},
	}

	cmd.Flags().String("secret", "", "signing secret (defaults to PLAID_WEBHOOK_SECRET)")
	return cmd
}

func simulateWebhookCmd() *cobra.Command {
	var (
		itemID string
		count  int
		seed   uint64
		target string
	)

	cmd := &cobra.Command{
		Use:   "simulate-webhook",
		Short: "Generate a signed synthetic webhook delivery",
		Long: "Generate a synthetic transaction batch for an item and sign it. " +
			"With --url the delivery is posted to a running server, otherwise body and signature are printed.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := webhookSecret(cmd)
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}

			payload := services.NewWebhookSimulator(seed).GeneratePayload(itemID, count)
			body, err := json.Marshal(payload)
			if err != nil {
				return fmt.Errorf("failed to encode payload: %w", err)
			}
			signature := services.SignPayload(secret, body)

			if target == "" {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s: %s\n", handlers.SignatureHeader, signature)
				fmt.Fprintln(out, string(body))
				return nil
			}

			return postWebhook(cmd.Context(), cmd.OutOrStdout(), target, body, signature)
		},
	}

	cmd.Flags().String("secret", "", "signing secret (defaults to PLAID_WEBHOOK_SECRET)")
	cmd.Flags().StringVar(&itemID, "item", services.DemoItemIDTenantA, "provider item id")
	cmd.Flags().IntVar(&count, "count", 10, "number of transactions")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "generator seed (0 uses the clock)")
	cmd.Flags().StringVar(&target, "url", "", "webhook endpoint, e.g. http://localhost:8080/api/v1/webhooks/plaid")
	return cmd
}

func postWebhook(ctx context.Context, out io.Writer, target string, body []byte, signature string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(handlers.SignatureHeader, signature)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("delivery failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	fmt.Fprintf(out, "%d %s\n", resp.StatusCode, bytes.TrimSpace(respBody))
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("delivery rejected with status %d", resp.StatusCode)
	}
	return nil
}
