package service

const (
	HorizonMonths          = 36
	DaysPerMonth           = 30
	ReferencePlatform      = "Spotify"
	ReferencePlatformShare = 0.55  // share of total revenue earned on the reference platform
	DefaultMarketRate      = 0.015 // per-stream rate for markets missing from the rate table
	DefaultGenreMultiplier = 1.0

	SuggestedPriceMonth  = 33  // 2.75 years
	SuggestedPriceMargin = 0.8 // buyer keeps 20% of the revenue earned by SuggestedPriceMonth

	MaxInvestment        = 1_000_000_000.0
	MaxDailyStreams      = 1_000_000_000
	MaxMarketsPerRequest = 50
	MaxTitleLength       = 200
)
