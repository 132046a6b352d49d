package models

type DrinkMenu struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"type:varchar(50);not null" json:"title"`
	Subtitle string `gorm:"type:varchar(50);not null" json:"subtitle"`
	PriceTot int    `gorm:"not null" json:"priceTot"`
}

func (DrinkMenu) TableName() string {
	return "drink_menu"
}
