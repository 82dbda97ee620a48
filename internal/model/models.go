package model

// Models 需要在启动时自动建表的模型
func Models() []interface{} {
	return []interface{}{
		&User{},
		&WishlistItem{},
		&Review{},
	}
}
