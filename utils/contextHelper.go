package utils

import (
	"context"

	"github.com/amirrdn/acounting-api/appctx"
)

var (
	ContextKeyToken    = appctx.ContextKeyToken
	ContextKeyUserId   = appctx.ContextKeyUserId
	ContextKeyUsername = appctx.ContextKeyUsername
	ContextKeyRole     = appctx.ContextKeyRole
	ContextKeyBranchId = appctx.ContextKeyBranchId
)

func GetUserIdFromContext(ctx context.Context) (int, bool) {
	return appctx.GetInt(ctx, ContextKeyUserId)
}

func GetUsernameFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyUsername)
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyRole)
}

func GetBranchIdFromContext(ctx context.Context) (int, bool) {
	return appctx.GetInt(ctx, ContextKeyBranchId)
}

func SetUserIdInContext(ctx context.Context, userId int) context.Context {
	return appctx.Set(ctx, ContextKeyUserId, userId)
}

func SetUsernameInContext(ctx context.Context, username string) context.Context {
	return appctx.Set(ctx, ContextKeyUsername, username)
}

func SetRoleInContext(ctx context.Context, role string) context.Context {
	return appctx.Set(ctx, ContextKeyRole, role)
}

func SetBranchIdInContext(ctx context.Context, branchId int) context.Context {
	return appctx.Set(ctx, ContextKeyBranchId, branchId)
}
