package models

import (
	"time"
)

type Post struct {
	ID      uint      `json:"id" gorm:"primaryKey"`
	Title   string    `json:"titulo" gorm:"column:titulo;size:100;not null"`
	Text    string    `json:"texto" gorm:"column:texto;size:1000;not null"`
	Date    time.Time `json:"data" gorm:"column:data;autoUpdateTime"`
	ThemeID uint      `json:"tema_id" gorm:"column:tema_id;not null;index"`
	Theme   *Theme    `json:"tema,omitempty"`
	UserID  uint      `json:"usuario_id" gorm:"column:usuario_id;not null;index"`
	User    *User     `json:"usuario,omitempty"`
}

func (Post) TableName() string {
	return "tb_postagens"
}

type CreatePostRequest struct {
	Title   string `json:"titulo" binding:"required,notblank,min=5,max=100"`
	Text    string `json:"texto" binding:"required,min=10,max=1000"`
	ThemeID uint   `json:"tema_id" binding:"required"`
	// UserID defaults to the authenticated user when omitted.
	UserID uint `json:"usuario_id"`
}

type UpdatePostRequest struct {
	ID      uint   `json:"id" binding:"required"`
	Title   string `json:"titulo" binding:"required,notblank,min=5,max=100"`
	Text    string `json:"texto" binding:"required,min=10,max=1000"`
	ThemeID uint   `json:"tema_id" binding:"required"`
	// UserID keeps the stored author when omitted.
	UserID uint `json:"usuario_id"`
}

func (r *CreatePostRequest) ToPost() *Post {
	return &Post{
		Title:   r.Title,
		Text:    r.Text,
		ThemeID: r.ThemeID,
		UserID:  r.UserID,
	}
}

func (r *UpdatePostRequest) ToPost() *Post {
	return &Post{
		ID:      r.ID,
		Title:   r.Title,
		Text:    r.Text,
		ThemeID: r.ThemeID,
		UserID:  r.UserID,
	}
}
