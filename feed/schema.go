package feed

import "encoding/json"

// variantSchema is one row of the structural matching table: the
// shape's mandatory wire fields and a decoder for it.
type variantSchema struct {
	txType   TxType
	required []string
	decode   func(json.RawMessage) (Item, error)
}

func decodeAs[T Item](raw json.RawMessage) (Item, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// requiredWith prefixes the fields every shape shares (SudoPool
// excepted, its block field is optional) onto a shape's own
// mandatory fields.
func requiredWith(fields ...string) []string {
	req := []string{
		"wallet", "wallet_label", "tx_hash", "tx_type", "chain",
		"index", "timestamp", "block",
	}
	return append(req, fields...)
}

// variantSchemas is tried in order, first match wins. The order is
// significant and part of the decode contract: shapes with larger
// mandatory field sets come before structurally compatible subsets
// (Perp before Flashloan, Lending before Reward, everything before
// ContractInteraction's near-universal subset would be wrong the
// other way around). NftSweep carries the same mandatory fields as
// NftTrade and is therefore unreachable by structural matching; it is
// listed to keep the table total over the published shapes.
var variantSchemas = []variantSchema{
	{TxTypeSwap, requiredWith(
		"dex", "from", "to",
		"token0_address", "token0_amount", "token0_amount_usd", "token0_name",
		"token0_price_usd", "token0_symbol", "token0_icon_link",
		"token1_address", "token1_amount", "token1_amount_usd", "token1_name",
		"token1_price_usd", "token1_symbol", "token1_icon_link",
		"first_interaction",
	), decodeAs[Swap]},
	{TxTypeLp, requiredWith(
		"dex", "from", "type",
		"token0_address", "token0_amount", "token0_amount_usd", "token0_name",
		"token0_price_usd", "token0_symbol", "token0_icon_link",
		"token1_address", "token1_amount", "token1_amount_usd", "token1_name",
		"token1_price_usd", "token1_symbol", "token1_icon_link",
		"lower_bound", "upper_bound",
	), decodeAs[Lp]},
	{TxTypeTransfer, requiredWith(
		"from", "to", "from_label", "to_label",
		"amount_usd", "contract_address", "name", "symbol",
		"token_price_usd", "type", "token_icon_link",
	), decodeAs[Transfer]},
	{TxTypeLending, requiredWith(
		"from", "from_label", "action", "address", "amount", "amount_usd",
		"dex", "health_factor", "name", "platform", "price_usd", "symbol",
		"token_icon_link",
	), decodeAs[Lending]},
	{TxTypeNftMint, requiredWith(
		"from", "to", "from_label", "to_label", "thumbnail", "image",
		"amount", "contract_address", "contract_type", "fee",
		"nft_name", "nft_symbol", "nft_token_id", "currency_symbol",
		"type", "value", "value_usd",
	), decodeAs[NftMint]},
	{TxTypeNftTrade, requiredWith(
		"from", "to", "thumbnail", "image", "action", "contract",
		"marketplace", "nft_address", "nft_name", "nft_symbol",
		"nft_token_id", "price", "price_usd", "profit", "currency_symbol",
		"buyer", "seller", "token", "first_interaction", "bid_accepted",
	), decodeAs[NftTrade]},
	{TxTypeNftTransfer, requiredWith(
		"from", "to", "from_label", "to_label", "thumbnail", "image",
		"contract_address", "contract_type", "fee",
		"nft_name", "nft_symbol", "nft_token_id", "type", "value",
	), decodeAs[NftTransfer]},
	{TxTypeNftLending, requiredWith(
		"from", "to", "from_label", "to_label", "thumbnail", "image",
		"action", "currency_address", "currency_symbol", "interest",
		"nft_address", "nft_name", "nft_symbol", "platform",
		"nft_token_id", "price", "price_usd", "terms", "refinance",
	), decodeAs[NftLending]},
	{TxTypeBridge, requiredWith(
		"from", "to", "from_label", "to_label",
		"token_address", "token_name", "token_symbol", "token_icon_link",
		"amount", "amount_usd", "from_chain", "to_chain", "platform",
		"price", "type",
	), decodeAs[Bridge]},
	{TxTypeContractInteraction, requiredWith(
		"from", "to", "contract_address", "contract_label",
	), decodeAs[ContractInteraction]},
	{TxTypeWrap, requiredWith(
		"dex", "from", "to", "action", "amount", "amount_usd",
		"contract_address", "name", "symbol", "token_price_usd",
		"token_type", "token_icon_link",
	), decodeAs[Wrap]},
	{TxTypeSudoPool, []string{
		"wallet", "wallet_label", "tx_hash", "tx_type", "chain",
		"index", "timestamp",
		"from", "nft_address", "nft_amount", "nft_price", "nft_symbol", "to",
		"token0_address", "token0_amount", "token0_amount_usd", "token0_name",
		"token0_price_usd", "token0_symbol", "token0_icon_link",
	}, decodeAs[SudoPool]},
	{TxTypeReward, requiredWith(
		"address", "amount", "amount_usd", "from", "name", "price_usd",
		"symbol",
	), decodeAs[Reward]},
	{TxTypeStaking, requiredWith(
		"from", "to", "from_label", "to_label", "amount", "amount_usd",
		"token_price_usd", "contract_address", "symbol", "name", "action",
	), decodeAs[Staking]},
	{TxTypePerp, requiredWith(
		"action", "amount_usd", "average_price",
		"base_token_address", "base_token_amount", "base_token_symbol",
		"dex", "from", "liquidation", "liquidation_price", "to",
		"trade_direction", "perp_details",
		"token0_address", "token0_amount", "token0_amount_usd", "token0_name",
		"token0_price_usd", "token0_symbol", "token0_icon_link",
		"token1_address", "token1_amount", "token1_amount_usd", "token1_name",
		"token1_price_usd", "token1_symbol", "token1_icon_link",
		"realized_pnl", "is_nft_perp",
	), decodeAs[Perp]},
	{TxTypeFlashloan, requiredWith(
		"address", "amount", "amount_usd", "dex", "from", "health_factor",
		"name", "platform", "price_usd", "symbol", "token_icon_link",
	), decodeAs[Flashloan]},
	{TxTypeContractCreation, requiredWith(
		"amount_usd", "contract_address", "from", "from_label",
	), decodeAs[ContractCreation]},
	{TxTypeNftLiquidation, requiredWith(
		"contract_address", "currency_address", "currency_symbol", "dex",
		"from", "nft_address", "nft_name", "nft_symbol", "platform",
		"price", "price_usd", "to", "token_id",
	), decodeAs[NftLiquidation]},
	{TxTypeOption, requiredWith(
		"action", "amount", "asset", "dex", "direction", "expiry", "from",
		"option_price_usd", "position_status", "spot_price_usd", "status",
		"strike_price_usd", "to", "type",
	), decodeAs[OptionEvent]},
	{TxTypeNftSweep, requiredWith(
		"from", "to", "thumbnail", "image", "action", "contract",
		"marketplace", "nft_address", "nft_name", "nft_symbol",
		"nft_token_id", "price", "price_usd", "profit", "currency_symbol",
		"buyer", "seller", "token", "first_interaction", "bid_accepted",
	), decodeAs[NftSweep]},
}
