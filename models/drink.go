package models

type Drink struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DrinkMenuID uint      `gorm:"not null" json:"drinkMenuId"`
	DrinkMenu   DrinkMenu `gorm:"foreignKey:DrinkMenuID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
}

func (Drink) TableName() string {
	return "drink"
}
