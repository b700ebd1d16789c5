package model

import "time"

// CRMの顧客。ログインユーザーではなく営業管理の対象レコード。
type Customer struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	Name string `gorm:"type:varchar(255);not null" json:"name"`

	//メールアドレス（重複不可）
	Email string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`

	//電話番号（任意。+国番号つき または 10桁）
	Phone string `gorm:"type:varchar(30)" json:"phone"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
