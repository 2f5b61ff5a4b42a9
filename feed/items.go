package feed

// Item is one decoded transaction-shaped record from the feed.
//
// The wire format carries no reliable discriminator, so the concrete
// shape is recovered by structural matching (see decode.go). The set
// of implementations is closed: every variant lives in this package.
type Item interface {
	// Kind reports which transaction shape this item is.
	Kind() TxType

	item()
}

// TokenMarketCap holds market cap and liquidity details for a token
// involved in a transaction. Present on swaps and transfers only when
// the feed was asked to include it.
type TokenMarketCap struct {
	TokenAddress string  `json:"token_address"`
	MarketCap    float64 `json:"market_cap"`
	Liquidity    float64 `json:"liquidity"`
}

// Swap is a token swap on a DEX.
type Swap struct {
	Wallet           string          `json:"wallet"`
	WalletLabel      string          `json:"wallet_label"`
	TxHash           string          `json:"tx_hash"`
	TxType           string          `json:"tx_type"`
	Chain            string          `json:"chain"`
	Index            uint32          `json:"index"`
	Timestamp        uint64          `json:"timestamp"`
	Block            uint64          `json:"block"`
	Dex              string          `json:"dex"`
	From             string          `json:"from"`
	To               string          `json:"to"`
	Token0Address    string          `json:"token0_address"`
	Token0Amount     float64         `json:"token0_amount"`
	Token0AmountUSD  float64         `json:"token0_amount_usd"`
	Token0Name       string          `json:"token0_name"`
	Token0PriceUSD   float64         `json:"token0_price_usd"`
	Token0Symbol     string          `json:"token0_symbol"`
	Token0IconLink   string          `json:"token0_icon_link"`
	Token1Address    string          `json:"token1_address"`
	Token1Amount     float64         `json:"token1_amount"`
	Token1AmountUSD  float64         `json:"token1_amount_usd"`
	Token1Name       string          `json:"token1_name"`
	Token1PriceUSD   float64         `json:"token1_price_usd"`
	Token1Symbol     string          `json:"token1_symbol"`
	Token1IconLink   string          `json:"token1_icon_link"`
	FirstInteraction bool            `json:"first_interaction"`
	TokenMarketCap   *TokenMarketCap `json:"token_market_cap,omitempty"`
}

// Lp is a liquidity pool add/remove transaction.
type Lp struct {
	Wallet          string  `json:"wallet"`
	WalletLabel     string  `json:"wallet_label"`
	TxHash          string  `json:"tx_hash"`
	TxType          string  `json:"tx_type"`
	Chain           string  `json:"chain"`
	Index           uint32  `json:"index"`
	Timestamp       uint64  `json:"timestamp"`
	Block           uint64  `json:"block"`
	Dex             string  `json:"dex"`
	From            string  `json:"from"`
	Type            string  `json:"type"` // "add" | "remove"
	Token0Address   string  `json:"token0_address"`
	Token0Amount    float64 `json:"token0_amount"`
	Token0AmountUSD float64 `json:"token0_amount_usd"`
	Token0Name      string  `json:"token0_name"`
	Token0PriceUSD  float64 `json:"token0_price_usd"`
	Token0Symbol    string  `json:"token0_symbol"`
	Token0IconLink  string  `json:"token0_icon_link"`
	Token1Address   string  `json:"token1_address"`
	Token1Amount    float64 `json:"token1_amount"`
	Token1AmountUSD float64 `json:"token1_amount_usd"`
	Token1Name      string  `json:"token1_name"`
	Token1PriceUSD  float64 `json:"token1_price_usd"`
	Token1Symbol    string  `json:"token1_symbol"`
	Token1IconLink  string  `json:"token1_icon_link"`
	LowerBound      float64 `json:"lower_bound"`
	UpperBound      float64 `json:"upper_bound"`
}

// Transfer is a plain token transfer.
type Transfer struct {
	Wallet          string          `json:"wallet"`
	WalletLabel     string          `json:"wallet_label"`
	TxHash          string          `json:"tx_hash"`
	TxType          string          `json:"tx_type"`
	Chain           string          `json:"chain"`
	Index           uint32          `json:"index"`
	Timestamp       uint64          `json:"timestamp"`
	Block           uint64          `json:"block"`
	From            string          `json:"from"`
	To              string          `json:"to"`
	FromLabel       string          `json:"from_label"`
	ToLabel         string          `json:"to_label"`
	AmountUSD       float64         `json:"amount_usd"`
	ContractAddress string          `json:"contract_address"`
	Name            string          `json:"name"`
	Symbol          string          `json:"symbol"`
	TokenPriceUSD   float64         `json:"token_price_usd"`
	Type            string          `json:"type"` // contract standard, e.g. ERC20
	TokenIconLink   string          `json:"token_icon_link"`
	TokenMarketCap  *TokenMarketCap `json:"token_market_cap,omitempty"`
}

// Lending is a lending-platform transaction (supply, borrow, repay).
type Lending struct {
	Wallet        string  `json:"wallet"`
	WalletLabel   string  `json:"wallet_label"`
	TxHash        string  `json:"tx_hash"`
	TxType        string  `json:"tx_type"`
	Chain         string  `json:"chain"`
	Index         uint32  `json:"index"`
	Timestamp     uint64  `json:"timestamp"`
	Block         uint64  `json:"block"`
	From          string  `json:"from"`
	FromLabel     string  `json:"from_label"`
	Action        string  `json:"action"`
	Address       string  `json:"address"`
	Amount        float64 `json:"amount"`
	AmountUSD     float64 `json:"amount_usd"`
	Dex           string  `json:"dex"`
	HealthFactor  float64 `json:"health_factor"`
	Name          string  `json:"name"`
	Platform      string  `json:"platform"`
	PriceUSD      float64 `json:"price_usd"`
	Symbol        string  `json:"symbol"`
	TokenIconLink string  `json:"token_icon_link"`
}

// NftMint is an NFT minting transaction.
type NftMint struct {
	Wallet          string  `json:"wallet"`
	WalletLabel     string  `json:"wallet_label"`
	TxHash          string  `json:"tx_hash"`
	TxType          string  `json:"tx_type"`
	Chain           string  `json:"chain"`
	Index           uint32  `json:"index"`
	Timestamp       uint64  `json:"timestamp"`
	Block           uint64  `json:"block"`
	From            string  `json:"from"`
	To              string  `json:"to"`
	FromLabel       string  `json:"from_label"`
	ToLabel         string  `json:"to_label"`
	Thumbnail       string  `json:"thumbnail"`
	Image           string  `json:"image"`
	Amount          float64 `json:"amount"`
	ContractAddress string  `json:"contract_address"`
	ContractType    string  `json:"contract_type"`
	Fee             float64 `json:"fee"`
	NftName         string  `json:"nft_name"`
	NftSymbol       string  `json:"nft_symbol"`
	NftTokenID      string  `json:"nft_token_id"`
	CurrencySymbol  string  `json:"currency_symbol"`
	Type            string  `json:"type"`
	Value           float64 `json:"value"`
	ValueUSD        float64 `json:"value_usd"`
}

// NftTrade is an NFT marketplace trade.
type NftTrade struct {
	Wallet           string  `json:"wallet"`
	WalletLabel      string  `json:"wallet_label"`
	TxHash           string  `json:"tx_hash"`
	TxType           string  `json:"tx_type"`
	Chain            string  `json:"chain"`
	Index            uint32  `json:"index"`
	Timestamp        uint64  `json:"timestamp"`
	Block            uint64  `json:"block"`
	From             string  `json:"from"`
	To               string  `json:"to"`
	Thumbnail        string  `json:"thumbnail"`
	Image            string  `json:"image"`
	Action           string  `json:"action"`
	Contract         string  `json:"contract"`
	Marketplace      string  `json:"marketplace"`
	NftAddress       string  `json:"nft_address"`
	NftName          string  `json:"nft_name"`
	NftSymbol        string  `json:"nft_symbol"`
	NftTokenID       string  `json:"nft_token_id"`
	Price            float64 `json:"price"`
	PriceUSD         float64 `json:"price_usd"`
	Profit           float64 `json:"profit"`
	CurrencySymbol   string  `json:"currency_symbol"`
	Buyer            string  `json:"buyer"`
	Seller           string  `json:"seller"`
	Token            string  `json:"token"`
	FirstInteraction bool    `json:"first_interaction"`
	BidAccepted      bool    `json:"bid_accepted"`
}

// NftTransfer is an NFT transfer between wallets.
type NftTransfer struct {
	Wallet          string  `json:"wallet"`
	WalletLabel     string  `json:"wallet_label"`
	TxHash          string  `json:"tx_hash"`
	TxType          string  `json:"tx_type"`
	Chain           string  `json:"chain"`
	Index           uint32  `json:"index"`
	Timestamp       uint64  `json:"timestamp"`
	Block           uint64  `json:"block"`
	From            string  `json:"from"`
	To              string  `json:"to"`
	FromLabel       string  `json:"from_label"`
	ToLabel         string  `json:"to_label"`
	Thumbnail       string  `json:"thumbnail"`
	Image           string  `json:"image"`
	ContractAddress string  `json:"contract_address"`
	ContractType    string  `json:"contract_type"`
	Fee             float64 `json:"fee"`
	NftName         string  `json:"nft_name"`
	NftSymbol       string  `json:"nft_symbol"`
	NftTokenID      string  `json:"nft_token_id"`
	Type            string  `json:"type"`
	Value           float64 `json:"value"`
}

// NftLending is an NFT-collateralized lending transaction.
type NftLending struct {
	Wallet          string  `json:"wallet"`
	WalletLabel     string  `json:"wallet_label"`
	TxHash          string  `json:"tx_hash"`
	TxType          string  `json:"tx_type"`
	Chain           string  `json:"chain"`
	Index           uint32  `json:"index"`
	Timestamp       uint64  `json:"timestamp"`
	Block           uint64  `json:"block"`
	From            string  `json:"from"`
	To              string  `json:"to"`
	FromLabel       string  `json:"from_label"`
	ToLabel         string  `json:"to_label"`
	Thumbnail       string  `json:"thumbnail"`
	Image           string  `json:"image"`
	Action          string  `json:"action"`
	CurrencyAddress string  `json:"currency_address"`
	CurrencySymbol  string  `json:"currency_symbol"`
	Interest        float64 `json:"interest"`
	NftAddress      string  `json:"nft_address"`
	NftName         string  `json:"nft_name"`
	NftSymbol       string  `json:"nft_symbol"`
	Platform        string  `json:"platform"`
	NftTokenID      string  `json:"nft_token_id"`
	Price           float64 `json:"price"`
	PriceUSD        float64 `json:"price_usd"`
	Terms           float64 `json:"terms"`
	Refinance       bool    `json:"refinance"`
}

// Bridge is a cross-chain bridge transaction.
type Bridge struct {
	Wallet        string  `json:"wallet"`
	WalletLabel   string  `json:"wallet_label"`
	TxHash        string  `json:"tx_hash"`
	TxType        string  `json:"tx_type"`
	Chain         string  `json:"chain"`
	Index         uint32  `json:"index"`
	Timestamp     uint64  `json:"timestamp"`
	Block         uint64  `json:"block"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	FromLabel     string  `json:"from_label"`
	ToLabel       string  `json:"to_label"`
	TokenAddress  string  `json:"token_address"`
	TokenName     string  `json:"token_name"`
	TokenSymbol   string  `json:"token_symbol"`
	TokenIconLink string  `json:"token_icon_link"`
	Amount        float64 `json:"amount"`
	AmountUSD     float64 `json:"amount_usd"`
	FromChain     string  `json:"from_chain"`
	ToChain       string  `json:"to_chain"`
	Platform      string  `json:"platform"`
	Price         float64 `json:"price"`
	Type          string  `json:"type"` // "deposit" | "withdraw"
}

// ContractInteraction is a bare interaction with a smart contract.
type ContractInteraction struct {
	Wallet          string `json:"wallet"`
	WalletLabel     string `json:"wallet_label"`
	TxHash          string `json:"tx_hash"`
	TxType          string `json:"tx_type"`
	Chain           string `json:"chain"`
	Index           uint32 `json:"index"`
	Timestamp       uint64 `json:"timestamp"`
	Block           uint64 `json:"block"`
	From            string `json:"from"`
	To              string `json:"to"`
	ContractAddress string `json:"contract_address"`
	ContractLabel   string `json:"contract_label"`
}

// Wrap is a token wrap/unwrap transaction.
type Wrap struct {
	Wallet          string  `json:"wallet"`
	WalletLabel     string  `json:"wallet_label"`
	TxHash          string  `json:"tx_hash"`
	TxType          string  `json:"tx_type"`
	Chain           string  `json:"chain"`
	Index           uint32  `json:"index"`
	Timestamp       uint64  `json:"timestamp"`
	Block           uint64  `json:"block"`
	Dex             string  `json:"dex"`
	From            string  `json:"from"`
	To              string  `json:"to"`
	Action          string  `json:"action"` // "wrap" | "unwrap"
	Amount          float64 `json:"amount"`
	AmountUSD       float64 `json:"amount_usd"`
	ContractAddress string  `json:"contract_address"`
	Name            string  `json:"name"`
	Symbol          string  `json:"symbol"`
	TokenPriceUSD   float64 `json:"token_price_usd"`
	TokenType       string  `json:"token_type"`
	TokenIconLink   string  `json:"token_icon_link"`
}

// SudoPool is a sudoswap-style NFT liquidity pool transaction. Block
// and dex are not always reported by the feed for this shape.
type SudoPool struct {
	Wallet          string  `json:"wallet"`
	WalletLabel     string  `json:"wallet_label"`
	TxHash          string  `json:"tx_hash"`
	TxType          string  `json:"tx_type"`
	Chain           string  `json:"chain"`
	Index           uint32  `json:"index"`
	Timestamp       uint64  `json:"timestamp"`
	Block           *uint64 `json:"block,omitempty"`
	Dex             *string `json:"dex,omitempty"`
	From            string  `json:"from"`
	NftAddress      string  `json:"nft_address"`
	NftAmount       uint32  `json:"nft_amount"`
	NftPrice        float64 `json:"nft_price"`
	NftSymbol       string  `json:"nft_symbol"`
	To              string  `json:"to"`
	Token0Address   string  `json:"token0_address"`
	Token0Amount    float64 `json:"token0_amount"`
	Token0AmountUSD float64 `json:"token0_amount_usd"`
	Token0Name      string  `json:"token0_name"`
	Token0PriceUSD  float64 `json:"token0_price_usd"`
	Token0Symbol    string  `json:"token0_symbol"`
	Token0IconLink  string  `json:"token0_icon_link"`
}

// Reward is a reward or yield claim.
type Reward struct {
	Wallet      string  `json:"wallet"`
	WalletLabel string  `json:"wallet_label"`
	TxHash      string  `json:"tx_hash"`
	TxType      string  `json:"tx_type"`
	Chain       string  `json:"chain"`
	Index       uint32  `json:"index"`
	Timestamp   uint64  `json:"timestamp"`
	Block       uint64  `json:"block"`
	Address     string  `json:"address"`
	Amount      float64 `json:"amount"`
	AmountUSD   float64 `json:"amount_usd"`
	From        string  `json:"from"`
	Name        string  `json:"name"`
	PriceUSD    float64 `json:"price_usd"`
	Symbol      string  `json:"symbol"`
}

// Staking is a stake/unstake transaction.
type Staking struct {
	Wallet          string  `json:"wallet"`
	WalletLabel     string  `json:"wallet_label"`
	TxHash          string  `json:"tx_hash"`
	TxType          string  `json:"tx_type"`
	Chain           string  `json:"chain"`
	Index           uint32  `json:"index"`
	Timestamp       uint64  `json:"timestamp"`
	Block           uint64  `json:"block"`
	From            string  `json:"from"`
	To              string  `json:"to"`
	FromLabel       string  `json:"from_label"`
	ToLabel         string  `json:"to_label"`
	Amount          float64 `json:"amount"`
	AmountUSD       float64 `json:"amount_usd"`
	TokenPriceUSD   float64 `json:"token_price_usd"`
	ContractAddress string  `json:"contract_address"`
	Symbol          string  `json:"symbol"`
	Name            string  `json:"name"`
	Action          string  `json:"action"` // "stake" | "unstake"
}

// Perp is a perpetual futures event. Position fields are only
// reported for position-changing events.
type Perp struct {
	Wallet           string   `json:"wallet"`
	WalletLabel      string   `json:"wallet_label"`
	TxHash           string   `json:"tx_hash"`
	TxType           string   `json:"tx_type"`
	Chain            string   `json:"chain"`
	Index            uint32   `json:"index"`
	Timestamp        uint64   `json:"timestamp"`
	Block            uint64   `json:"block"`
	Action           string   `json:"action"`
	AmountUSD        float64  `json:"amount_usd"`
	AveragePrice     float64  `json:"average_price"`
	BaseTokenAddress string   `json:"base_token_address"`
	BaseTokenAmount  float64  `json:"base_token_amount"`
	BaseTokenSymbol  string   `json:"base_token_symbol"`
	Dex              string   `json:"dex"`
	From             string   `json:"from"`
	Liquidation      bool     `json:"liquidation"`
	LiquidationPrice float64  `json:"liquidation_price"`
	To               string   `json:"to"`
	TradeDirection   string   `json:"trade_direction"` // "long" | "short"
	PerpDetails      string   `json:"perp_details"`
	Token0Address    string   `json:"token0_address"`
	Token0Amount     float64  `json:"token0_amount"`
	Token0AmountUSD  float64  `json:"token0_amount_usd"`
	Token0Name       string   `json:"token0_name"`
	Token0PriceUSD   float64  `json:"token0_price_usd"`
	Token0Symbol     string   `json:"token0_symbol"`
	Token0IconLink   string   `json:"token0_icon_link"`
	Token1Address    string   `json:"token1_address"`
	Token1Amount     float64  `json:"token1_amount"`
	Token1AmountUSD  float64  `json:"token1_amount_usd"`
	Token1Name       string   `json:"token1_name"`
	Token1PriceUSD   float64  `json:"token1_price_usd"`
	Token1Symbol     string   `json:"token1_symbol"`
	Token1IconLink   string   `json:"token1_icon_link"`
	RealizedPnl      float64  `json:"realized_pnl"`
	IsNftPerp        bool     `json:"is_nft_perp"`
	PositionSize     *float64 `json:"position_size,omitempty"`
	PositionSizeUSD  *float64 `json:"position_size_usd,omitempty"`
	Leverage         *float64 `json:"leverage,omitempty"`
	UnrealizedPnl    *float64 `json:"unrealized_pnl,omitempty"`
}

// Flashloan is a flash loan transaction.
type Flashloan struct {
	Wallet        string  `json:"wallet"`
	WalletLabel   string  `json:"wallet_label"`
	TxHash        string  `json:"tx_hash"`
	TxType        string  `json:"tx_type"`
	Chain         string  `json:"chain"`
	Index         uint32  `json:"index"`
	Timestamp     uint64  `json:"timestamp"`
	Block         uint64  `json:"block"`
	Address       string  `json:"address"`
	Amount        float64 `json:"amount"`
	AmountUSD     float64 `json:"amount_usd"`
	Dex           string  `json:"dex"`
	From          string  `json:"from"`
	HealthFactor  float64 `json:"health_factor"`
	Name          string  `json:"name"`
	Platform      string  `json:"platform"`
	PriceUSD      float64 `json:"price_usd"`
	Symbol        string  `json:"symbol"`
	TokenIconLink string  `json:"token_icon_link"`
}

// ContractCreation is a contract deployment.
type ContractCreation struct {
	Wallet          string  `json:"wallet"`
	WalletLabel     string  `json:"wallet_label"`
	TxHash          string  `json:"tx_hash"`
	TxType          string  `json:"tx_type"`
	Chain           string  `json:"chain"`
	Index           uint32  `json:"index"`
	Timestamp       uint64  `json:"timestamp"`
	Block           uint64  `json:"block"`
	AmountUSD       float64 `json:"amount_usd"`
	ContractAddress string  `json:"contract_address"`
	From            string  `json:"from"`
	FromLabel       string  `json:"from_label"`
}

// NftLiquidation is a liquidation of NFT collateral.
type NftLiquidation struct {
	Wallet          string  `json:"wallet"`
	WalletLabel     string  `json:"wallet_label"`
	TxHash          string  `json:"tx_hash"`
	TxType          string  `json:"tx_type"`
	Chain           string  `json:"chain"`
	Index           uint32  `json:"index"`
	Timestamp       uint64  `json:"timestamp"`
	Block           uint64  `json:"block"`
	ContractAddress string  `json:"contract_address"`
	CurrencyAddress string  `json:"currency_address"`
	CurrencySymbol  string  `json:"currency_symbol"`
	Dex             string  `json:"dex"`
	From            string  `json:"from"`
	NftAddress      string  `json:"nft_address"`
	NftName         string  `json:"nft_name"`
	NftSymbol       string  `json:"nft_symbol"`
	Platform        string  `json:"platform"`
	Price           float64 `json:"price"`
	PriceUSD        float64 `json:"price_usd"`
	To              string  `json:"to"`
	TokenID         string  `json:"token_id"`
}

// OptionEvent is an options protocol event.
type OptionEvent struct {
	Wallet         string  `json:"wallet"`
	WalletLabel    string  `json:"wallet_label"`
	TxHash         string  `json:"tx_hash"`
	TxType         string  `json:"tx_type"`
	Chain          string  `json:"chain"`
	Index          uint32  `json:"index"`
	Timestamp      uint64  `json:"timestamp"`
	Block          uint64  `json:"block"`
	Action         string  `json:"action"`
	Amount         float64 `json:"amount"`
	Asset          string  `json:"asset"`
	Dex            string  `json:"dex"`
	Direction      string  `json:"direction"` // "call" | "put"
	Expiry         string  `json:"expiry"`
	From           string  `json:"from"`
	OptionPriceUSD float64 `json:"option_price_usd"`
	PositionStatus string  `json:"position_status"`
	SpotPriceUSD   float64 `json:"spot_price_usd"`
	Status         string  `json:"status"`
	StrikePriceUSD float64 `json:"strike_price_usd"`
	To             string  `json:"to"`
	Type           string  `json:"type"`
}

// NftSweep is a bulk NFT purchase across a collection.
type NftSweep struct {
	Wallet           string  `json:"wallet"`
	WalletLabel      string  `json:"wallet_label"`
	TxHash           string  `json:"tx_hash"`
	TxType           string  `json:"tx_type"`
	Chain            string  `json:"chain"`
	Index            uint32  `json:"index"`
	Timestamp        uint64  `json:"timestamp"`
	Block            uint64  `json:"block"`
	From             string  `json:"from"`
	To               string  `json:"to"`
	Thumbnail        string  `json:"thumbnail"`
	Image            string  `json:"image"`
	Action           string  `json:"action"`
	Contract         string  `json:"contract"`
	Marketplace      string  `json:"marketplace"`
	NftAddress       string  `json:"nft_address"`
	NftName          string  `json:"nft_name"`
	NftSymbol        string  `json:"nft_symbol"`
	NftTokenID       string  `json:"nft_token_id"`
	Price            float64 `json:"price"`
	PriceUSD         float64 `json:"price_usd"`
	Profit           float64 `json:"profit"`
	CurrencySymbol   string  `json:"currency_symbol"`
	Buyer            string  `json:"buyer"`
	Seller           string  `json:"seller"`
	Token            string  `json:"token"`
	FirstInteraction bool    `json:"first_interaction"`
	BidAccepted      bool    `json:"bid_accepted"`
}

func (Swap) Kind() TxType                { return TxTypeSwap }
func (Lp) Kind() TxType                  { return TxTypeLp }
func (Transfer) Kind() TxType            { return TxTypeTransfer }
func (Lending) Kind() TxType             { return TxTypeLending }
func (NftMint) Kind() TxType             { return TxTypeNftMint }
func (NftTrade) Kind() TxType            { return TxTypeNftTrade }
func (NftTransfer) Kind() TxType         { return TxTypeNftTransfer }
func (NftLending) Kind() TxType          { return TxTypeNftLending }
func (Bridge) Kind() TxType              { return TxTypeBridge }
func (ContractInteraction) Kind() TxType { return TxTypeContractInteraction }
func (Wrap) Kind() TxType                { return TxTypeWrap }
func (SudoPool) Kind() TxType            { return TxTypeSudoPool }
func (Reward) Kind() TxType              { return TxTypeReward }
func (Staking) Kind() TxType             { return TxTypeStaking }
func (Perp) Kind() TxType                { return TxTypePerp }
func (Flashloan) Kind() TxType           { return TxTypeFlashloan }
func (ContractCreation) Kind() TxType    { return TxTypeContractCreation }
func (NftLiquidation) Kind() TxType      { return TxTypeNftLiquidation }
func (OptionEvent) Kind() TxType         { return TxTypeOption }
func (NftSweep) Kind() TxType            { return TxTypeNftSweep }

func (Swap) item()                {}
func (Lp) item()                  {}
func (Transfer) item()            {}
func (Lending) item()             {}
func (NftMint) item()             {}
func (NftTrade) item()            {}
func (NftTransfer) item()         {}
func (NftLending) item()          {}
func (Bridge) item()              {}
func (ContractInteraction) item() {}
func (Wrap) item()                {}
func (SudoPool) item()            {}
func (Reward) item()              {}
func (Staking) item()             {}
func (Perp) item()                {}
func (Flashloan) item()           {}
func (ContractCreation) item()    {}
func (NftLiquidation) item()      {}
func (OptionEvent) item()         {}
func (NftSweep) item()            {}
