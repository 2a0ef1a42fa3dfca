package models

type Theme struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Description string `json:"descricao" gorm:"column:descricao;not null"`
	Posts       []Post `json:"postagem,omitempty" gorm:"foreignKey:ThemeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (Theme) TableName() string {
	return "tb_temas"
}

type CreateThemeRequest struct {
	Description string `json:"descricao" binding:"required,notblank"`
}

type UpdateThemeRequest struct {
	ID          uint   `json:"id" binding:"required"`
	Description string `json:"descricao" binding:"required,notblank"`
}
