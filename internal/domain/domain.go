package domain

import "time"

// Sentiment is the classified mood of a piece of text.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// RankedDomain names one of the sorted-set collections.
type RankedDomain string

const (
	DomainHashtags RankedDomain = "hashtags"
	DomainMentions RankedDomain = "mentions"
	DomainTopics   RankedDomain = "topics"
	DomainCoins    RankedDomain = "coins"
)

// RankedEntry is a (member, score) pair from a ranked collection.
type RankedEntry struct {
	Member string  `json:"member"`
	Score  float64 `json:"score"`
}

// HashtagCount is the wire form of a hashtag ranking entry.
type HashtagCount struct {
	Hashtag string `json:"hashtag"`
	Count   int64  `json:"count"`
}

// MentionCount is the wire form of a mention ranking entry.
type MentionCount struct {
	Mention string `json:"mention"`
	Count   int64  `json:"count"`
}

// Tweet is a captured social post. JSON field names follow the stored wire
// format and must not change.
type Tweet struct {
	ID           string    `json:"id"`
	Author       string    `json:"author"`
	AuthorHandle string    `json:"authorHandle"`
	Content      string    `json:"content"`
	Timestamp    time.Time `json:"timestamp"`
	Likes        int       `json:"likes"`
	Retweets     int       `json:"retweets"`
	Hashtags     []string  `json:"hashtags"`
	Mentions     []string  `json:"mentions"`
}

// Topic is the snapshot record for a trending discussion topic.
type Topic struct {
	Topic       string    `json:"topic"`
	TweetCount  int64     `json:"tweetCount"`
	Change24h   float64   `json:"change24h"`
	Sentiment   Sentiment `json:"sentiment"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Coin is the snapshot record for a tracked coin. Score is the computed
// trending score, not a market value.
type Coin struct {
	Symbol            string    `json:"symbol"`
	Name              string    `json:"name"`
	Price             float64   `json:"price"`
	Volume24h         float64   `json:"volume24h"`
	VolumeChange24h   float64   `json:"volumeChange24h"`
	Mentions24h       float64   `json:"mentions24h"`
	MentionsChange24h float64   `json:"mentionsChange24h"`
	Score             float64   `json:"score"`
	LastUpdated       time.Time `json:"lastUpdated"`
}

// WalletData is the latest known state of a tracked wallet.
type WalletData struct {
	Address     string    `json:"address"`
	Balance     float64   `json:"balance"`
	USDValue    float64   `json:"usdValue"`
	LastActive  time.Time `json:"lastActive"`
	RiskScore   int       `json:"riskScore"`
	IsTracked   bool      `json:"isTracked"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Transaction is one on-chain transaction attributed to a wallet.
type Transaction struct {
	Signature    string  `json:"signature"`
	BlockTime    int64   `json:"blockTime"`
	Slot         int64   `json:"slot"`
	Fee          float64 `json:"fee"`
	Status       string  `json:"status"`
	Type         string  `json:"type"`
	TokenAmount  float64 `json:"tokenAmount"`
	TokenSymbol  string  `json:"tokenSymbol"`
	USDValue     float64 `json:"usdValue"`
	Counterparty string  `json:"counterparty"`
	ProgramID    string  `json:"programId"`
}

// TokenHolding is one token position inside a wallet.
type TokenHolding struct {
	Mint           string  `json:"mint"`
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	Amount         float64 `json:"amount"`
	USDValue       float64 `json:"usdValue"`
	PriceChange24h float64 `json:"priceChange24h"`
}

// FallenWallet is a memorial entry for a liquidated wallet.
type FallenWallet struct {
	Address         string    `json:"address"`
	LiquidationDate time.Time `json:"liquidationDate"`
	AssetsLost      float64   `json:"assetsLost"`
	LossPercentage  float64   `json:"lossPercentage"`
	LastActive      time.Time `json:"lastActive"`
	Message         string    `json:"message"`
	Epitaph         string    `json:"epitaph"`
}

// Anomaly is a volume alert raised during coin updates.
type Anomaly struct {
	Symbol     string    `json:"symbol"`
	Kind       string    `json:"kind"`
	Detail     string    `json:"detail"`
	DetectedAt time.Time `json:"detectedAt"`
}
