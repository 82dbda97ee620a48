package repository

import (
	"github.com/user/llanera/internal/model"
	"gorm.io/gorm"
)

type WishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// ListByUser 获取用户想看列表，按写入顺序返回
func (r *WishlistRepository) ListByUser(userID int) ([]*model.WishlistItem, error) {
	items := []*model.WishlistItem{}
	if err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, storageErr("list wishlist", err)
	}
	return items, nil
}

// Add 添加想看，不检查重复
func (r *WishlistRepository) Add(userID, movieID int, title, posterPath string) (*model.WishlistItem, error) {
	item := &model.WishlistItem{
		UserID:     userID,
		MovieID:    movieID,
		Title:      title,
		PosterPath: posterPath,
	}
	if err := r.db.Create(item).Error; err != nil {
		return nil, storageErr("add wishlist item", err)
	}
	return item, nil
}

// Remove 删除用户某部电影的全部想看条目，没有匹配也算成功
func (r *WishlistRepository) Remove(userID, movieID int) (int64, error) {
	res := r.db.Where("user_id = ? AND movie_id = ?", userID, movieID).Delete(&model.WishlistItem{})
	if res.Error != nil {
		return 0, storageErr("remove wishlist item", res.Error)
	}
	return res.RowsAffected, nil
}
