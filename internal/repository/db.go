package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/user/llanera/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrStorage 持久层错误，所有离开仓库层的数据库错误都包装成它
var ErrStorage = errors.New("storage failure")

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

// InitDB 初始化数据库连接并自动建表
// driver 支持 postgres 和 sqlite
func InitDB(driver, dsn string) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         newGormLogger(),
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case "postgres":
		sqlDB, openErr := sql.Open("postgres", dsn)
		if openErr != nil {
			return nil, fmt.Errorf("无法连接数据库: %w", openErr)
		}
		if pingErr := sqlDB.Ping(); pingErr != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("数据库 ping 失败: %w", pingErr)
		}
		// 设置连接池
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)

		db, err = gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormCfg)
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(sqliteDSN(dsn)), gormCfg)
		if err == nil {
			// sqlite 单写者，限制连接数避免 database is locked
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				sqlDB.SetMaxOpenConns(1)
			}
		}
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	if err := db.AutoMigrate(model.Models()...); err != nil {
		return nil, fmt.Errorf("自动建表失败: %w", err)
	}

	return db, nil
}

// newGormLogger gorm 日志走标准库 log，和应用日志写到同一输出（含滚动文件）
// 查不到记录是正常结果，不记日志
func newGormLogger() logger.Interface {
	return logger.New(log.Default(), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?_busy_timeout=5000&_foreign_keys=off"
}

// Repositories 仓库集合
type Repositories struct {
	DB       *gorm.DB
	User     *UserRepository
	Wishlist *WishlistRepository
	Review   *ReviewRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:       db,
		User:     NewUserRepository(db),
		Wishlist: NewWishlistRepository(db),
		Review:   NewReviewRepository(db),
	}
}

// Ping 检查数据库连接
func (r *Repositories) Ping() error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return storageErr("ping", err)
	}
	return storageErr("ping", sqlDB.Ping())
}

// Close 关闭数据库连接
func (r *Repositories) Close() error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
