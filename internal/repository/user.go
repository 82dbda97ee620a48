package repository

import (
	"errors"
	"strings"

	"github.com/user/llanera/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrEmailTaken 邮箱已被注册
var ErrEmailTaken = errors.New("email already registered")

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create 创建用户，密码以 bcrypt 哈希保存
func (r *UserRepository) Create(email, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	user := &model.User{
		Email:    &normalized,
		Password: string(hash),
	}

	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, storageErr("create user", err)
	}

	return user, nil
}

// FindByID 根据 ID 查找用户，不存在时返回 nil
func (r *UserRepository) FindByID(id int) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("find user", err)
	}

	return &user, nil
}
