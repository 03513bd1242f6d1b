package model

// Booking is a reservation request. PackageName is a copy of a package
// name and is never checked against the packages table.
type Booking struct {
	ID          uint    `gorm:"primaryKey" bson:"_id"`
	UserName    string  `gorm:"size:100;not null" bson:"user_name"`
	UserEmail   *string `gorm:"size:100" bson:"user_email"`
	UserPhone   string  `gorm:"size:20;not null" bson:"user_phone"`
	EventDate   *string `gorm:"size:50" bson:"event_date"`
	PackageName *string `gorm:"size:100" bson:"package_name"`
	SubmittedAt string  `gorm:"size:50" bson:"submitted_at"`
}

func (Booking) TableName() string {
	return "bookings"
}

type BookingView struct {
	Id           string  `json:"_id"`
	CustomerName string  `json:"customer_name"`
	UserEmail    *string `json:"user_email"`
	Contact      string  `json:"contact"`
	Date         *string `json:"date"`
	Package      *string `json:"package"`
	SubmittedAt  string  `json:"submitted_at"`
}

func (b Booking) View() BookingView {
	return BookingView{
		Id:           FormatID(b.ID),
		CustomerName: b.UserName,
		UserEmail:    b.UserEmail,
		Contact:      b.UserPhone,
		Date:         b.EventDate,
		Package:      b.PackageName,
		SubmittedAt:  b.SubmittedAt,
	}
}
