package validation

import "time"

// Payload schemas for every mutating route. Field rules live in the
// validate tags; the fixed client-facing texts live in Messages so a
// violation always renders the same way regardless of which rule
// tripped first.

type ReservationPayload struct {
	FirstName       string `json:"firstName" validate:"required,max=50"`
	LastName        string `json:"lastName" validate:"required,max=50"`
	PhoneNumber     string `json:"phoneNumber" validate:"required,max=20"`
	Email           string `json:"email" validate:"required,max=128"`
	Message         string `json:"message" validate:"required,max=1000"`
	GuestAmount     int    `json:"guestAmount" validate:"required,gt=0"`
	ReservationDate string `json:"reservationDate" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`

	// ParsedDate is filled during normalization so downstream code
	// never re-parses the date string.
	ParsedDate time.Time `json:"-" validate:"-"`
}

func (p *ReservationPayload) Messages() map[string]string {
	return map[string]string{
		"FirstName.required":       "The first name has to be at least 1 character long.",
		"FirstName.max":            "The first name cannot exceed 50 characters.",
		"LastName.required":        "The last name has to be at least 1 character long.",
		"LastName.max":             "The last name cannot exceed 50 characters.",
		"PhoneNumber.required":     "The phone number has to be at least 1 character long.",
		"PhoneNumber.max":          "The phone number cannot exceed 20 characters.",
		"Email.required":           "The email has to be at least 1 character long.",
		"Email.max":                "The email cannot exceed 128 characters.",
		"Message.required":         "The message has to be at least 1 character long.",
		"Message.max":              "The message cannot exceed 1000 characters.",
		"GuestAmount.required":     "Number must be greater than 0",
		"GuestAmount.gt":           "Number must be greater than 0",
		"ReservationDate.required": "The reservation date must be in ISO 8601 format.",
		"ReservationDate.datetime": "The reservation date must be in ISO 8601 format.",
	}
}

func (p *ReservationPayload) normalize() error {
	date, err := time.Parse(time.RFC3339, p.ReservationDate)
	if err != nil {
		return err
	}
	p.ParsedDate = date
	return nil
}

type AdminUserPayload struct {
	Username     string `json:"username" validate:"required"`
	PasswordHash string `json:"passwordHash" validate:"required"`
}

func (p *AdminUserPayload) Messages() map[string]string {
	return map[string]string{
		"Username.required":     "The username has to be at least 1 character long.",
		"PasswordHash.required": "The password has to be at least 1 character long.",
	}
}

type CourseMenuPayload struct {
	Title    string `json:"title" validate:"required,max=50"`
	PriceTot int    `json:"priceTot" validate:"required,gt=0"`
}

func (p *CourseMenuPayload) Messages() map[string]string {
	return map[string]string{
		"Title.required":    "The course menu title has to be at least 1 character long.",
		"Title.max":         "The course menu title cannot exceed 50 characters.",
		"PriceTot.required": "Number must be greater than 0",
		"PriceTot.gt":       "Number must be greater than 0",
	}
}

type CoursePayload struct {
	CourseMenuID string `json:"courseMenuId" validate:"required"`
	Name         string `json:"name" validate:"required,max=200"`
	Type         string `json:"type" validate:"required,oneof=starter main dessert"`
}

func (p *CoursePayload) Messages() map[string]string {
	return map[string]string{
		"CourseMenuID.required": "courseMenuId has to be at least 1 character long.",
		"Name.required":         "The course name has to be at least 1 character long.",
		"Name.max":              "The course name cannot exceed 200 characters.",
		"Type.required":         "Invalid course type. Expected one of: starter, main, or dessert.",
		"Type.oneof":            "Invalid course type. Expected one of: starter, main, or dessert.",
	}
}

type CourseUpdatePayload struct {
	Name string `json:"name" validate:"required,max=200"`
	Type string `json:"type" validate:"required,oneof=starter main dessert"`
}

func (p *CourseUpdatePayload) Messages() map[string]string {
	return map[string]string{
		"Name.required": "The course name has to be at least 1 character long.",
		"Name.max":      "The course name cannot exceed 200 characters.",
		"Type.required": "Invalid course type. Expected one of: starter, main, or dessert.",
		"Type.oneof":    "Invalid course type. Expected one of: starter, main, or dessert.",
	}
}

type DrinkMenuPayload struct {
	Title    string `json:"title" validate:"required,max=50"`
	Subtitle string `json:"subtitle" validate:"required,max=50"`
	PriceTot int    `json:"priceTot" validate:"required,gt=0"`
}

func (p *DrinkMenuPayload) Messages() map[string]string {
	return map[string]string{
		"Title.required":    "The drink menu title has to be at least 1 character long.",
		"Title.max":         "The drink menu title cannot exceed 50 characters.",
		"Subtitle.required": "The drink menu subtitle has to be at least 1 character long.",
		"Subtitle.max":      "The drink menu subtitle cannot exceed 50 characters.",
		"PriceTot.required": "Number must be greater than 0",
		"PriceTot.gt":       "Number must be greater than 0",
	}
}

type DrinkPayload struct {
	DrinkMenuID string `json:"drinkMenuId" validate:"required"`
	Name        string `json:"name" validate:"required,max=200"`
}

func (p *DrinkPayload) Messages() map[string]string {
	return map[string]string{
		"DrinkMenuID.required": "drinkMenuId has to be at least 1 character long.",
		"Name.required":        "The drink name has to be at least 1 character long.",
		"Name.max":             "The drink name cannot exceed 200 characters.",
	}
}

type DrinkUpdatePayload struct {
	Name string `json:"name" validate:"required,max=200"`
}

func (p *DrinkUpdatePayload) Messages() map[string]string {
	return map[string]string{
		"Name.required": "The drink name has to be at least 1 character long.",
		"Name.max":      "The drink name cannot exceed 200 characters.",
	}
}
