package model

// User 用户模型
type User struct {
	ID       int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Email    *string `json:"email" gorm:"unique"`
	Password string  `json:"-" gorm:"column:password"`
}

func (User) TableName() string {
	return "users"
}
