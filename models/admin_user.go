package models

// AdminUser is the single back-office account that can reach the
// protected routes. Passwords are stored as bcrypt hashes only.
type AdminUser struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"type:varchar(255);unique;not null" json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Email        string `gorm:"type:varchar(255);not null" json:"email"`
	FirstName    string `gorm:"type:varchar(255);not null" json:"firstName"`
	LastName     string `gorm:"type:varchar(255);not null" json:"lastName"`
}

func (AdminUser) TableName() string {
	return "admin_user"
}
