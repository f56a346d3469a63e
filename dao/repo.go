package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用 DAO 基类，各表 DAO 嵌入后按需扩展
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Create(ctx context.Context, data *T) error {
	return r.Db.WithContext(ctx).Create(data).Error
}

func (r Repo[T]) FindById(ctx context.Context, id any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) FindAll(ctx context.Context, where string, args ...any) ([]T, error) {
	var items []T
	db := r.Db.WithContext(ctx)
	if where != "" {
		db = db.Where(where, args...)
	}
	if err := db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(new(T)).Where(where, args...).Count(&count).Error
	return count > 0, err
}

func (r Repo[T]) UpdateById(ctx context.Context, id any, data map[string]any) error {
	if len(data) == 0 {
		return nil
	}
	return r.Db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(data).Error
}

func (r Repo[T]) DeleteById(ctx context.Context, id any) error {
	return r.Db.WithContext(ctx).Where("id = ?", id).Delete(new(T)).Error
}
