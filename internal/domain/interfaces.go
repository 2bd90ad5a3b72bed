package domain

import "context"

// LedgerClient определяет методы взаимодействия с внешним сервисом выплат
type LedgerClient interface {
	ListMerchants(ctx context.Context, filter MerchantFilter) (*Page[MerchantAggregate], error)
	GetMerchant(ctx context.Context, shopID string) (*MerchantAggregate, error)
	ListPayouts(ctx context.Context, filter PayoutFilter) (*Page[Payout], error)
	GetPayout(ctx context.Context, payoutID string) (*Payout, error)
	CreatePayout(ctx context.Context, cmd CreatePayoutCommand) (*Payout, error)
	DeletePayout(ctx context.Context, payoutID string) error
	GetStats(ctx context.Context) (*Stats, error)
}

// AuditRepository определяет методы для работы с журналом команд
type AuditRepository interface {
	Record(ctx context.Context, rec *AuditRecord) error
	ListRecent(ctx context.Context, limit int) ([]*AuditRecord, error)
}

// CacheInvalidator помечает закэшированные результаты чтения устаревшими
type CacheInvalidator interface {
	InvalidateMerchants(ctx context.Context) error
	InvalidatePayouts(ctx context.Context) error
}
