package model

import "github.com/corevecdb/corevec/pkg/types"

// Tenant is the root of the multi-tenant namespace. Identity is its name;
// there is no surrogate key.
type Tenant struct {
	Name               string
	CreatedAt          types.Timestamp
	LastCompactionTime int64
}

type CreateTenant struct {
	Name string
	Ts   types.Timestamp
}

type GetTenant struct {
	Name string
}
