package models

// Course rows cascade-delete with their parent menu, but the delete
// endpoint always acts on the course's own id.
type Course struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CourseMenuID uint       `gorm:"not null" json:"courseMenuId"`
	CourseMenu   CourseMenu `gorm:"foreignKey:CourseMenuID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name         string     `gorm:"type:varchar(200);not null" json:"name"`
	Type         string     `gorm:"type:varchar(20);not null" json:"type"`
}

func (Course) TableName() string {
	return "course"
}
