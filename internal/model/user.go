package model

import "time"

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

type User struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Username  string    `gorm:"size:64;not null;uniqueIndex:uk_users_username"`
	FullName  string    `gorm:"column:full_name;size:120;not null"`
	Email     string    `gorm:"size:255;not null"`
	Phone     string    `gorm:"size:32"`
	Password  string    `gorm:"size:255;not null"`
	Role      Role      `gorm:"size:16;not null;default:USER"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
