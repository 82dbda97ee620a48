package repository

import (
	"time"

	"github.com/user/llanera/internal/model"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// ListByMovie 获取电影影评，最新的在前
// created_at 相同时按 id 降序，保证刚写入的影评排在第一位
func (r *ReviewRepository) ListByMovie(movieID int) ([]*model.Review, error) {
	reviews := []*model.Review{}
	err := r.db.Where("movie_id = ?", movieID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, storageErr("list reviews", err)
	}
	return reviews, nil
}

// Add 写入影评，评分与内容不在这一层校验
func (r *ReviewRepository) Add(userID, movieID, rating int, comment string) (*model.Review, error) {
	review := &model.Review{
		UserID:    userID,
		MovieID:   movieID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.db.Create(review).Error; err != nil {
		return nil, storageErr("add review", err)
	}
	return review, nil
}
