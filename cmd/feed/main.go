package main

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mr-tron/base58"
	"github.com/rs/zerolog"

	"cielo-go-sdk/cielo"
	"cielo-go-sdk/feed"
	"cielo-go-sdk/internal/observability"
)

func main() {
	wallet := flag.String("wallet", "", "Wallet address to filter by (must be on the account's watchlist)")
	limit := flag.Uint("limit", 0, "Max transactions per page (server cap 100)")
	listID := flag.Uint64("list", 0, "Watchlist ID to filter by")
	chains := flag.String("chains", "", "Comma-separated chains (e.g. ethereum,solana)")
	txTypes := flag.String("tx-types", "", "Comma-separated transaction types (e.g. swap,nft_trade)")
	tokens := flag.String("tokens", "", "Comma-separated token addresses or symbols")
	minUSD := flag.Uint64("min-usd", 0, "Minimum USD value of transactions")
	newTrades := flag.Bool("new-trades", false, "Only first-time trades")
	fromTS := flag.Uint64("from-timestamp", 0, "Lower UNIX timestamp bound")
	toTS := flag.Uint64("to-timestamp", 0, "Upper UNIX timestamp bound")
	pages := flag.Int("pages", 1, "Number of pages to follow via the paging cursor")
	envFile := flag.String("env-file", "", "Optional .env file with CIELO_API_KEY")
	metricsAddr := flag.String("metrics-addr", "", "Prometheus metrics HTTP address (empty to disable)")
	maxRetries := flag.Int("max-retries", cielo.DefaultMaxRetries, "Max retries per request")

	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			logger.Fatal().Err(err).Str("file", *envFile).Msg("Load env file")
		}
	}

	apiKey := os.Getenv("CIELO_API_KEY")
	if apiKey == "" {
		logger.Fatal().Msg("CIELO_API_KEY must be set")
	}

	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", observability.Handler())
			logger.Info().Str("addr", *metricsAddr).Msg("Starting metrics server")
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil && err != http.ErrServerClosed {
				logger.Error().Err(err).Msg("Metrics server error")
			}
		}()
	}

	filters := buildFilters(*wallet, *limit, *listID, *chains, *txTypes, *tokens, *minUSD, *newTrades, *fromTS, *toTS)

	// The API treats wallets as opaque strings; a malformed Solana
	// address just yields an empty feed, so flag it early.
	if *wallet != "" && slices.Contains(filters.Chains, "solana") {
		if raw, err := base58.Decode(*wallet); err != nil || len(raw) != 32 {
			logger.Warn().Str("wallet", *wallet).Msg("Wallet is not a valid base58 Solana address")
		}
	}

	client, err := cielo.New(apiKey, cielo.WithMaxRetries(*maxRetries))
	if err != nil {
		logger.Fatal().Err(err).Msg("Create client")
	}

	ctx := context.Background()
	enc := json.NewEncoder(os.Stdout)

	for page := 0; page < *pages; page++ {
		resp, err := client.GetFeedPage(ctx, filters)
		if err != nil {
			logger.Fatal().Err(err).Int("page", page).Msg("Fetch feed")
		}

		for _, item := range resp.Data.Items {
			if err := enc.Encode(item); err != nil {
				logger.Fatal().Err(err).Msg("Encode item")
			}
		}

		logger.Info().
			Int("page", page).
			Int("items", len(resp.Data.Items)).
			Bool("has_next", resp.Data.Paging.HasNextPage).
			Msg("Fetched feed page")

		if !resp.Data.Paging.HasNextPage || resp.Data.Paging.NextObject == nil {
			break
		}
		filters.StartFrom = resp.Data.Paging.NextObject
	}
}

// buildFilters maps the set flags onto feed.Filters, leaving zero
// flags unset so they emit no query parameter.
func buildFilters(wallet string, limit uint, listID uint64, chains, txTypes, tokens string, minUSD uint64, newTrades bool, fromTS, toTS uint64) feed.Filters {
	var f feed.Filters

	if wallet != "" {
		f.Wallet = &wallet
	}
	if limit > 0 {
		l := uint32(limit)
		f.Limit = &l
	}
	if listID > 0 {
		f.ListID = &listID
	}
	if chains != "" {
		f.Chains = strings.Split(chains, ",")
	}
	if txTypes != "" {
		for _, t := range strings.Split(txTypes, ",") {
			f.TxTypes = append(f.TxTypes, feed.TxType(strings.TrimSpace(t)))
		}
	}
	if tokens != "" {
		f.Tokens = strings.Split(tokens, ",")
	}
	if minUSD > 0 {
		f.MinUSD = &minUSD
	}
	if newTrades {
		f.NewTrades = &newTrades
	}
	if fromTS > 0 {
		f.FromTimestamp = &fromTS
	}
	if toTS > 0 {
		f.ToTimestamp = &toTS
	}

	return f
}
