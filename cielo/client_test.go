package cielo

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"cielo-go-sdk/feed"
)

const oneSwapEnvelope = `{
	"status": "ok",
	"data": {
		"items": [{
			"wallet": "0x1111111111111111111111111111111111111111",
			"wallet_label": "whale.eth",
			"tx_hash": "0xaaa",
			"tx_type": "swap",
			"chain": "ethereum",
			"index": 3,
			"timestamp": 1700000000,
			"block": 18000000,
			"dex": "uniswap_v3",
			"from": "0x1111111111111111111111111111111111111111",
			"to": "0x2222222222222222222222222222222222222222",
			"token0_address": "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
			"token0_amount": 1.5,
			"token0_amount_usd": 3000,
			"token0_name": "Wrapped Ether",
			"token0_price_usd": 2000,
			"token0_symbol": "WETH",
			"token0_icon_link": "https://icons.test/weth.png",
			"token1_address": "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48",
			"token1_amount": 3000,
			"token1_amount_usd": 3000,
			"token1_name": "USD Coin",
			"token1_price_usd": 1,
			"token1_symbol": "USDC",
			"token1_icon_link": "https://icons.test/usdc.png",
			"first_interaction": false
		}],
		"paging": {
			"total_rows_in_page": 1,
			"has_next_page": false
		}
	}
}`

func TestNewRejectsEmptyKey(t *testing.T) {
	_, err := New("")
	if !errors.Is(err, ErrEmptyAPIKey) {
		t.Fatalf("error = %v, want ErrEmptyAPIKey", err)
	}
}

func TestNewRejectsInvalidKey(t *testing.T) {
	_, err := New("bad\nkey")
	if !errors.Is(err, ErrInvalidAPIKey) {
		t.Fatalf("error = %v, want ErrInvalidAPIKey", err)
	}
}

func TestNewDefaults(t *testing.T) {
	c, err := New("test-key")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", c.baseURL, DefaultBaseURL)
	}
	if c.client.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", c.client.Timeout, DefaultTimeout)
	}
	want := retryPolicy{
		minInterval: DefaultMinRetryInterval,
		maxInterval: DefaultMaxRetryInterval,
		maxRetries:  DefaultMaxRetries,
	}
	if c.retry != want {
		t.Errorf("retry = %+v, want %+v", c.retry, want)
	}
}

func TestWithBaseURLTrimsTrailingSlash(t *testing.T) {
	c, err := New("test-key", WithBaseURL("http://example.test/api/v1/"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.baseURL != "http://example.test/api/v1" {
		t.Errorf("baseURL = %q, want trailing slash trimmed", c.baseURL)
	}
}

func TestGetFeedPageRequestShape(t *testing.T) {
	var gotPath, gotKey string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-API-KEY")
		gotQuery = r.URL.Query()
		io.WriteString(w, oneSwapEnvelope)
	}))
	defer srv.Close()

	c, err := New("secret-key", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	limit := uint32(10)
	minUSD := uint64(100)
	page, err := c.GetFeedPage(context.Background(), feed.Filters{
		Limit:   &limit,
		Chains:  []string{"solana"},
		TxTypes: []feed.TxType{feed.TxTypeSwap},
		MinUSD:  &minUSD,
	})
	if err != nil {
		t.Fatalf("GetFeedPage: %v", err)
	}

	if gotPath != "/feed" {
		t.Errorf("path = %q, want /feed", gotPath)
	}
	if gotKey != "secret-key" {
		t.Errorf("X-API-KEY = %q, want the configured key", gotKey)
	}
	wantQuery := map[string]string{
		"limit":   "10",
		"chains":  "solana",
		"txTypes": "swap",
		"minUSD":  "100",
	}
	if len(gotQuery) != len(wantQuery) {
		t.Errorf("query has %d parameters, want %d: %v", len(gotQuery), len(wantQuery), gotQuery)
	}
	for k, want := range wantQuery {
		if got := gotQuery[k]; len(got) != 1 || got[0] != want {
			t.Errorf("query[%s] = %v, want %q", k, got, want)
		}
	}

	if len(page.Data.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(page.Data.Items))
	}
	swap, ok := page.Data.Items[0].(feed.Swap)
	if !ok {
		t.Fatalf("item is %T, want feed.Swap", page.Data.Items[0])
	}
	if swap.WalletLabel != "whale.eth" {
		t.Errorf("WalletLabel = %q, want %q", swap.WalletLabel, "whale.eth")
	}
	if page.Data.Paging.HasNextPage {
		t.Error("HasNextPage = true, want false")
	}
	if page.Data.Paging.NextObject != nil {
		t.Errorf("NextObject = %q, want nil", *page.Data.Paging.NextObject)
	}
}

func TestGetFeedDecodeErrorNotRetried(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		io.WriteString(w, `{"status":"ok","data":{"items":[{"mystery":true}],"paging":{"total_rows_in_page":1,"has_next_page":false}}}`)
	}))
	defer srv.Close()

	c, err := New("test-key", WithBaseURL(srv.URL), WithMinRetryInterval(time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = c.GetFeed(context.Background(), feed.Filters{})
	var de *feed.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error = %v, want *feed.DecodeError", err)
	}
	if de.Index != 0 {
		t.Errorf("Index = %d, want 0", de.Index)
	}
	if !errors.Is(err, feed.ErrUnknownShape) {
		t.Errorf("error = %v, want ErrUnknownShape in the chain", err)
	}
	if got := attempts.Load(); got != 1 {
		t.Errorf("server saw %d attempts, want 1 (decode failures are terminal)", got)
	}
}

func TestGetFeedEmptyQueryForEmptyFilters(t *testing.T) {
	var gotRawQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		io.WriteString(w, emptyEnvelope)
	}))
	defer srv.Close()

	if _, err := fastClient(t, srv.URL).GetFeed(context.Background(), feed.Filters{}); err != nil {
		t.Fatalf("GetFeed: %v", err)
	}
	if gotRawQuery != "" {
		t.Errorf("raw query = %q, want empty", gotRawQuery)
	}
}
