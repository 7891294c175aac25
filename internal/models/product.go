package models

import "time"

// Product represents a product in the catalog.
type Product struct {
	ID          uint     `gorm:"primaryKey;autoIncrement"`
	Name        string   `gorm:"column:nombre;type:varchar(100);not null"`
	Description *string  `gorm:"column:descripcion;type:varchar(500)"`
	Price       float64  `gorm:"column:precio;not null"`
	Stock       int      `gorm:"column:stock;not null"`
	Category    Category `gorm:"column:categoria;type:varchar(20);not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the table name used by GORM.
func (Product) TableName() string {
	return "productos"
}
