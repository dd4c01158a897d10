// Package mockdata provides the static fallback payloads served when the
// backing store is empty or unavailable. Timestamps are rendered relative to
// the caller's clock so the data always looks fresh.
package mockdata

import (
	"time"

	"github.com/Ken123King/PariahAI/internal/domain"
)

// Tweets returns the fallback recent-tweets feed.
func Tweets(now time.Time) []domain.Tweet {
	return []domain.Tweet{
		{
			ID:           "tweet-1",
			Author:       "Crypto Trader",
			AuthorHandle: "cryptotrader",
			Content:      "Just lost everything on that $SOL dump. Down 98% on my portfolio. This is the end for me. #SolanaRugPull",
			Timestamp:    now,
			Likes:        234,
			Retweets:     56,
			Hashtags:     []string{"SolanaRugPull"},
			Mentions:     []string{},
		},
		{
			ID:           "tweet-2",
			Author:       "DeFi Degen",
			AuthorHandle: "defidegen",
			Content:      "Another day, another Solana project rugs. $MDOGE team just disappeared with $4.5M. I'm done with this ecosystem.",
			Timestamp:    now.Add(-time.Hour),
			Likes:        567,
			Retweets:     123,
			Hashtags:     []string{},
			Mentions:     []string{},
		},
	}
}

// Hashtags returns the fallback hashtag ranking.
func Hashtags() []domain.HashtagCount {
	return []domain.HashtagCount{
		{Hashtag: "SolanaRugPull", Count: 1245},
		{Hashtag: "Crypto", Count: 876},
		{Hashtag: "BONK", Count: 654},
		{Hashtag: "SOL", Count: 432},
		{Hashtag: "PariahAI", Count: 321},
	}
}

// Mentions returns the fallback mention ranking.
func Mentions() []domain.MentionCount {
	return []domain.MentionCount{
		{Mention: "cryptoinfluencer", Count: 543},
		{Mention: "solana", Count: 432},
		{Mention: "bonk", Count: 321},
		{Mention: "AIPariah", Count: 210},
		{Mention: "VCbro", Count: 123},
	}
}

// Topics returns the fallback trending topics.
func Topics(now time.Time) []domain.Topic {
	return []domain.Topic{
		{Topic: "Solana Crash", TweetCount: 12450, Change24h: 345, Sentiment: domain.SentimentNegative, LastUpdated: now},
		{Topic: "SOL Liquidations", TweetCount: 8760, Change24h: 230, Sentiment: domain.SentimentNegative, LastUpdated: now},
		{Topic: "Solana Recovery", TweetCount: 4320, Change24h: -120, Sentiment: domain.SentimentPositive, LastUpdated: now},
	}
}

// Coins returns the fallback trending coins.
func Coins(now time.Time) []domain.Coin {
	return []domain.Coin{
		{
			Symbol:            "SOL",
			Name:              "Solana",
			Price:             150,
			Volume24h:         1_200_000,
			VolumeChange24h:   5.2,
			Mentions24h:       5600,
			MentionsChange24h: 12.3,
			Score:             85,
			LastUpdated:       now,
		},
		{
			Symbol:            "BONK",
			Name:              "Bonk",
			Price:             0.00000123,
			Volume24h:         450_000,
			VolumeChange24h:   25.7,
			Mentions24h:       3200,
			MentionsChange24h: 45.8,
			Score:             92,
			LastUpdated:       now,
		},
	}
}

// Wallet returns the fallback wallet overview for the given address.
func Wallet(address string, now time.Time) domain.WalletData {
	return domain.WalletData{
		Address:     address,
		Balance:     5.234,
		USDValue:    785.1,
		LastActive:  now,
		RiskScore:   65,
		IsTracked:   false,
		LastUpdated: now,
	}
}

// Transactions returns the fallback wallet transaction history.
func Transactions(now time.Time) []domain.Transaction {
	return []domain.Transaction{
		{
			Signature:    "5xGZsYxGBq4qtbrgLXKKXs9ZUc8xzGrz6JuDuJDEpDUJxkqNMgSNALUKfU1cBhDMNTVKXgJr9BdfVXQUEMwuGTJu",
			BlockTime:    now.Add(-time.Hour).Unix(),
			Slot:         100_000_000,
			Fee:          0.000005,
			Status:       "success",
			Type:         "swap",
			TokenAmount:  100,
			TokenSymbol:  "BONK",
			USDValue:     25,
			Counterparty: "0x7a2D...3e4F",
			ProgramID:    "11111111111111111111111111111111",
		},
		{
			Signature:    "4tGHsYxGBq4qtbrgLXKKXs9ZUc8xzGrz6JuDuJDEpDUJxkqNMgSNALUKfU1cBhDMNTVKXgJr9BdfVXQUEMwuGTJu",
			BlockTime:    now.Add(-2 * time.Hour).Unix(),
			Slot:         100_000_001,
			Fee:          0.000005,
			Status:       "success",
			Type:         "transfer",
			TokenAmount:  0.5,
			TokenSymbol:  "SOL",
			USDValue:     75,
			Counterparty: "0xB3c5...9a1D",
			ProgramID:    "11111111111111111111111111111111",
		},
	}
}

// Tokens returns the fallback wallet token holdings.
func Tokens() []domain.TokenHolding {
	return []domain.TokenHolding{
		{
			Mint:           "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263",
			Symbol:         "BONK",
			Name:           "Bonk",
			Amount:         1_000_000,
			USDValue:       123.45,
			PriceChange24h: 5.2,
		},
		{
			Mint:           "So11111111111111111111111111111111111111112",
			Symbol:         "SOL",
			Name:           "Solana",
			Amount:         5.234,
			USDValue:       785.1,
			PriceChange24h: -2.3,
		},
	}
}

// FallenWallets returns the fallback memorial feed.
func FallenWallets(now time.Time) []domain.FallenWallet {
	return []domain.FallenWallet{
		{
			Address:         "0x7a2D...3e4F",
			LiquidationDate: now,
			AssetsLost:      124_500,
			LossPercentage:  98.7,
			LastActive:      now,
			Message:         "Believed in the 'next Solana' and now lives in a cardboard box.",
			Epitaph:         "Here lies a trader who bought high and sold low. May your next life have better timing.",
		},
		{
			Address:         "0xB3c5...9a1D",
			LiquidationDate: now.Add(-24 * time.Hour),
			AssetsLost:      78_900,
			LossPercentage:  100,
			LastActive:      now.Add(-24 * time.Hour),
			Message:         "Aped into a rug. Deleted Twitter. Never seen again.",
			Epitaph:         "Trusted the team. The team disappeared with the funds. Trust no one.",
		},
	}
}
