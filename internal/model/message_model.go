package model

import "time"

type Message struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Name      *string   `gorm:"type:varchar(255)"`
	Email     *string   `gorm:"type:varchar(255)"`
	Subject   *string   `gorm:"type:varchar(255)"`
	Body      *string   `gorm:"type:text;column:message"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Message) TableName() string {
	return "messages"
}
