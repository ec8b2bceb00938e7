package model

import "github.com/corevecdb/corevec/pkg/types"

// Database is uniquely named within a tenant.
type Database struct {
	ID     string
	Name   string
	Tenant string
	Ts     types.Timestamp
}

type CreateDatabase struct {
	ID     string
	Name   string
	Tenant string
	Ts     types.Timestamp
}

type GetDatabase struct {
	Name   string
	Tenant string
}

type ListDatabases struct {
	Tenant string
	Limit  *int32
	Offset *int32
}
