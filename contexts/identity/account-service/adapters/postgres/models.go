package postgresadapter

import (
	"time"

	"vershyna/contexts/identity/account-service/domain/entities"
)

type userModel struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Username     string    `gorm:"column:username;size:64;uniqueIndex"`
	Email        string    `gorm:"column:email;size:64;uniqueIndex"`
	PasswordHash string    `gorm:"column:password;size:256"`
	FirstName    string    `gorm:"column:first_name;size:64"`
	LastName     string    `gorm:"column:last_name;size:64"`
	MiddleName   string    `gorm:"column:middle_name;size:64"`
	IsActive     bool      `gorm:"column:is_active"`
	IsAdmin      bool      `gorm:"column:is_admin"`
	IsEditor     bool      `gorm:"column:is_editor"`
	DateJoined   time.Time `gorm:"column:date_joined"`
}

func (userModel) TableName() string { return "api_user" }

func (m userModel) toEntity() entities.User {
	return entities.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		MiddleName:   m.MiddleName,
		IsActive:     m.IsActive,
		IsAdmin:      m.IsAdmin,
		IsEditor:     m.IsEditor,
		DateJoined:   m.DateJoined.UTC(),
	}
}

func userModelFromEntity(item entities.User) userModel {
	return userModel{
		ID:           item.ID,
		Username:     item.Username,
		Email:        item.Email,
		PasswordHash: item.PasswordHash,
		FirstName:    item.FirstName,
		LastName:     item.LastName,
		MiddleName:   item.MiddleName,
		IsActive:     item.IsActive,
		IsAdmin:      item.IsAdmin,
		IsEditor:     item.IsEditor,
		DateJoined:   item.DateJoined.UTC(),
	}
}
