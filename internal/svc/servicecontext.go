package svc

import (
	"log"

	"github.com/zeromicro/go-zero/core/stores/redis"

	"coindash-api/internal/cache"
	"coindash-api/internal/config"
	marketpkg "coindash-api/pkg/market"
	_ "coindash-api/pkg/market/providers/coingecko"
	_ "coindash-api/pkg/market/providers/yahoo"
	"coindash-api/pkg/sentiment"
)

type ServiceContext struct {
	Config config.Config

	TTL       cache.TTLSet
	Store     cache.Store
	Providers map[string]marketpkg.Provider
	Fetcher   *marketpkg.Fetcher
	Sentiment *sentiment.Scorer
}

func NewServiceContext(c config.Config) *ServiceContext {
	svc := &ServiceContext{
		Config:    c,
		TTL:       cache.NewTTLSet(c.TTL.Short, c.TTL.Medium, c.TTL.Long),
		Sentiment: sentiment.NewScorer(),
	}

	marketCfg := c.Market.Value
	if marketCfg == nil {
		marketCfg = marketpkg.MustLoad()
	}

	providers, err := marketCfg.BuildProviders()
	if err != nil {
		log.Fatalf("failed to build market providers: %v", err)
	}
	svc.Providers = providers

	tiers, err := marketCfg.BuildTiers(providers)
	if err != nil {
		log.Fatalf("failed to resolve market tiers: %v", err)
	}

	if c.HasRedis() {
		svc.Store = cache.NewRedisStore(redis.MustNewRedis(c.Redis), svc.TTL)
	} else {
		store, err := cache.NewMemoryStore(svc.TTL)
		if err != nil {
			log.Fatalf("failed to build memory cache: %v", err)
		}
		svc.Store = store
	}

	svc.Fetcher = marketpkg.NewFetcher(tiers, marketpkg.WithCache(svc.Store))
	return svc
}
