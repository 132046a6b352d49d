package models

type CourseMenu struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"type:varchar(50);not null" json:"title"`
	PriceTot int    `gorm:"not null" json:"priceTot"`
}

func (CourseMenu) TableName() string {
	return "course_menu"
}
