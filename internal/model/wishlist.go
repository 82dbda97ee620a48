package model

// WishlistItem 想看列表条目
// movie_id 是 TMDB 的电影 ID，不做本地外键校验；同一用户同一电影允许重复条目
type WishlistItem struct {
	ID         int    `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     int    `json:"user_id" gorm:"index:idx_wishlist_user_movie"`
	MovieID    int    `json:"movie_id" gorm:"index:idx_wishlist_user_movie"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
}

func (WishlistItem) TableName() string {
	return "wishlist"
}
