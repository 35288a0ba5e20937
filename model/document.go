package model

import "time"

type Document struct {
	ID     uint `gorm:"primaryKey;autoIncrement;index" json:"id"`
	UserID uint `gorm:"index;not null" json:"usuario_id"`

	// Name the uploader gave the file. Only the name survives the upload,
	// the original bytes are dropped after extraction
	Filename string `gorm:"size:255;not null" json:"nome_arquivo"`

	// Full text pulled out of the PDF, page texts joined with newlines
	ExtractedText string `gorm:"type:text;not null" json:"texto_extraido"`

	// Size of the uploaded file in bytes, not of the extracted text
	FileSize int64 `json:"tamanho_arquivo"`

	CreatedAt time.Time  `json:"data_criacao"`
	UpdatedAt *time.Time `json:"data_atualizacao,omitempty"`
}

func (Document) TableName() string {
	return "documentos_texto"
}
