package dbmodel

import "context"

// ITransaction runs fn inside a single database transaction; fn's context
// carries the transaction-scoped connection so every *Db call made from
// inside fn, via IMetaDomain, participates in it. A non-nil return aborts
// and rolls back.
type ITransaction interface {
	Transaction(ctx context.Context, fn func(txCtx context.Context) error) error
}

// IMetaDomain resolves per-table DAOs bound to ctx's transaction (or the
// plain connection, outside a transaction).
type IMetaDomain interface {
	TenantDb(ctx context.Context) ITenantDb
	DatabaseDb(ctx context.Context) IDatabaseDb
	CollectionDb(ctx context.Context) ICollectionDb
	CollectionMetadataDb(ctx context.Context) ICollectionMetadataDb
	SegmentDb(ctx context.Context) ISegmentDb
	SegmentMetadataDb(ctx context.Context) ISegmentMetadataDb
	NotificationDb(ctx context.Context) INotificationDb
}
