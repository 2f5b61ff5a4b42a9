package feed

import (
	"net/url"
	"strconv"
	"strings"
)

// TxType identifies a transaction shape for feed filtering. Values
// are the snake_case names the API expects in the txTypes parameter.
type TxType string

const (
	TxTypeBridge              TxType = "bridge"
	TxTypeContractCreation    TxType = "contract_creation"
	TxTypeContractInteraction TxType = "contract_interaction"
	TxTypeFlashloan           TxType = "flashloan"
	TxTypeLending             TxType = "lending"
	TxTypeLp                  TxType = "lp"
	TxTypeNftLending          TxType = "nft_lending"
	TxTypeNftLiquidation      TxType = "nft_liquidation"
	TxTypeNftMint             TxType = "nft_mint"
	TxTypeNftSweep            TxType = "nft_sweep"
	TxTypeNftTrade            TxType = "nft_trade"
	TxTypeNftTransfer         TxType = "nft_transfer"
	TxTypeOption              TxType = "option"
	TxTypePerp                TxType = "perp"
	TxTypeReward              TxType = "reward"
	TxTypeStaking             TxType = "staking"
	TxTypeSudoPool            TxType = "sudo_pool"
	TxTypeSwap                TxType = "swap"
	TxTypeTransfer            TxType = "transfer"
	TxTypeWrap                TxType = "wrap"
)

// Filters narrows a feed query. Every field is optional; unset fields
// produce no query parameter. A Filters value is constructed per call
// and never mutated by the client.
//
// The feed is scoped to the account behind the API key, so a wallet
// filter only matches wallets already on that account's watchlist.
type Filters struct {
	// Wallet restricts the feed to a single wallet address.
	Wallet *string
	// Limit caps the number of returned transactions. The server
	// enforces a maximum of 100.
	Limit *uint32
	// ListID restricts the feed to one watchlist.
	ListID *uint64
	// Chains restricts the feed to the given chains (e.g. "ethereum").
	Chains []string
	// TxTypes restricts the feed to the given transaction shapes.
	TxTypes []TxType
	// Tokens restricts the feed to tokens given by address or symbol.
	Tokens []string
	// MinUSD is the minimum USD notional of returned transactions.
	MinUSD *uint64
	// NewTrades restricts the feed to first-time trades.
	NewTrades *bool
	// StartFrom is the opaque cursor from a previous response's
	// Paging.NextObject.
	StartFrom *string
	// FromTimestamp is the inclusive lower UNIX-timestamp bound.
	FromTimestamp *uint64
	// ToTimestamp is the inclusive upper UNIX-timestamp bound.
	ToTimestamp *uint64
	// IncludeMarketCap asks the server to attach market cap info to
	// swaps and transfers. Carried for API parity; the feed endpoint
	// takes no query parameter for it.
	IncludeMarketCap *bool
}

// Query maps the set fields onto their feed query parameters.
func (f Filters) Query() url.Values {
	q := url.Values{}

	if f.Wallet != nil {
		q.Set("wallet", *f.Wallet)
	}
	if f.Limit != nil {
		q.Set("limit", strconv.FormatUint(uint64(*f.Limit), 10))
	}
	if f.ListID != nil {
		q.Set("list", strconv.FormatUint(*f.ListID, 10))
	}
	if len(f.Chains) > 0 {
		q.Set("chains", strings.Join(f.Chains, ","))
	}
	if len(f.TxTypes) > 0 {
		types := make([]string, len(f.TxTypes))
		for i, t := range f.TxTypes {
			types[i] = string(t)
		}
		q.Set("txTypes", strings.Join(types, ","))
	}
	if len(f.Tokens) > 0 {
		q.Set("tokens", strings.Join(f.Tokens, ","))
	}
	if f.MinUSD != nil {
		q.Set("minUSD", strconv.FormatUint(*f.MinUSD, 10))
	}
	if f.NewTrades != nil {
		q.Set("newTrades", strconv.FormatBool(*f.NewTrades))
	}
	if f.StartFrom != nil {
		q.Set("startFrom", *f.StartFrom)
	}
	if f.FromTimestamp != nil {
		q.Set("fromTimestamp", strconv.FormatUint(*f.FromTimestamp, 10))
	}
	if f.ToTimestamp != nil {
		q.Set("toTimestamp", strconv.FormatUint(*f.ToTimestamp, 10))
	}

	return q
}
