package model

type ContactMessage struct {
	ID          uint   `gorm:"primaryKey" bson:"_id"`
	Name        string `gorm:"size:100;not null" bson:"name"`
	Email       string `gorm:"size:100;not null" bson:"email"`
	Message     string `gorm:"type:text;not null" bson:"message"`
	SubmittedAt string `gorm:"size:50" bson:"submitted_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

type ContactMessageView struct {
	Id          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Message     string `json:"message"`
	SubmittedAt string `json:"submitted_at"`
}

func (m ContactMessage) View() ContactMessageView {
	return ContactMessageView{
		Id:          FormatID(m.ID),
		Name:        m.Name,
		Email:       m.Email,
		Message:     m.Message,
		SubmittedAt: m.SubmittedAt,
	}
}
