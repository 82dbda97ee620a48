package model

import "time"

// Review 用户影评，写入后不可修改
type Review struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int       `json:"user_id"`
	MovieID   int       `json:"movie_id" gorm:"index:idx_reviews_movie_created"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_reviews_movie_created"`
}

func (Review) TableName() string {
	return "reviews"
}
