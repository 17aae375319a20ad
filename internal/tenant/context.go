package tenant

import "context"

type storeIDKey struct{}

// WithStoreID 把已校验的店铺 ID 放入 context
func WithStoreID(ctx context.Context, storeID string) context.Context {
	return context.WithValue(ctx, storeIDKey{}, storeID)
}

// StoreIDFrom 从 context 取店铺 ID，并再次校验
func StoreIDFrom(ctx context.Context) (string, error) {
	id, _ := ctx.Value(storeIDKey{}).(string)
	return ValidateStoreID(id)
}
