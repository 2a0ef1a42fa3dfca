package models

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"nome" gorm:"column:nome;not null"`
	Login    string `json:"usuario" gorm:"column:usuario;uniqueIndex;not null"`
	Password string `json:"senha" gorm:"column:senha;not null"`
	Photo    string `json:"foto" gorm:"column:foto"`
	Posts    []Post `json:"postagem,omitempty" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (User) TableName() string {
	return "tb_usuarios"
}

// UserLogin carries login requests in and login results out. It is never
// persisted.
type UserLogin struct {
	ID       uint   `json:"id"`
	Name     string `json:"nome"`
	Login    string `json:"usuario" binding:"required"`
	Password string `json:"senha" binding:"required"`
	Photo    string `json:"foto"`
	Token    string `json:"token"`
}

type CreateUserRequest struct {
	Name     string `json:"nome" binding:"required,notblank"`
	Login    string `json:"usuario" binding:"required,email"`
	Password string `json:"senha" binding:"required,notblank,min=8"`
	Photo    string `json:"foto" binding:"omitempty,url"`
}

type UpdateUserRequest struct {
	ID       uint   `json:"id" binding:"required"`
	Name     string `json:"nome" binding:"required,notblank"`
	Login    string `json:"usuario" binding:"required,email"`
	Password string `json:"senha" binding:"required,notblank,min=8"`
	Photo    string `json:"foto" binding:"omitempty,url"`
}

func (r *CreateUserRequest) ToUser() *User {
	return &User{
		Name:     r.Name,
		Login:    r.Login,
		Password: r.Password,
		Photo:    r.Photo,
	}
}

func (r *UpdateUserRequest) ToUser() *User {
	return &User{
		ID:       r.ID,
		Name:     r.Name,
		Login:    r.Login,
		Password: r.Password,
		Photo:    r.Photo,
	}
}
