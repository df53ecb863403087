package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles a request context with an optional gorm transaction.
// Store methods run inside Tx when it is set.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}

// Background is a Context with no transaction.
func Background(ctx context.Context) Context {
	return Context{Ctx: ctx}
}
