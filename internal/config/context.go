package config

import "context"

type accountStoreCtxKeyType string

const accountStoreCtxKey accountStoreCtxKeyType = "accountStore"

type configCtxKeyType string

const configCtxKey configCtxKeyType = "config"

func WithAccountStore(ctx context.Context, store *AccountStore) context.Context {
	return context.WithValue(ctx, accountStoreCtxKey, store)
}

func AccountStoreFromContext(ctx context.Context) *AccountStore {
	store, ok := ctx.Value(accountStoreCtxKey).(*AccountStore)
	if !ok {
		panic("accountStore not present in context")
	}
	return store
}

func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configCtxKey, cfg)
}

func ConfigFromContext(ctx context.Context) *Config {
	cfg, ok := ctx.Value(configCtxKey).(*Config)
	if !ok {
		panic("config not present in context")
	}
	return cfg
}
