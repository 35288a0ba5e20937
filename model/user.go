// Package model defines database models
package model

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"nome_usuario"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Active       bool   `gorm:"default:true" json:"ativo"`

	CreatedAt time.Time  `json:"data_criacao"`
	UpdatedAt *time.Time `json:"data_atualizacao,omitempty"`

	Documents []Document `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "usuarios"
}
