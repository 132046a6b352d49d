package models

type Reservation struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	FirstName       string `gorm:"type:varchar(50);not null" json:"firstName"`
	LastName        string `gorm:"type:varchar(50);not null" json:"lastName"`
	PhoneNumber     string `gorm:"type:varchar(20);not null" json:"phoneNumber"`
	Email           string `gorm:"type:varchar(128);not null" json:"email"`
	Message         string `gorm:"type:text;not null" json:"message"`
	GuestAmount     int    `gorm:"not null" json:"guestAmount"`
	ReservationDate string `gorm:"type:varchar(64);not null" json:"reservationDate"`
}

func (Reservation) TableName() string {
	return "reservation"
}
