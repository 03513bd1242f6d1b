package model

type Gallery struct {
	ID       uint    `gorm:"primaryKey" bson:"_id"`
	Title    *string `gorm:"size:100" bson:"title"`
	ImageURL string  `gorm:"column:image_url;size:255;not null" bson:"image_url"`
	Category *string `gorm:"size:50" bson:"category"`
}

func (Gallery) TableName() string {
	return "galleries"
}

type GalleryView struct {
	Id       string  `json:"_id"`
	Title    *string `json:"title"`
	ImageURL string  `json:"image_url"`
	Category *string `json:"category"`
}

func (g Gallery) View() GalleryView {
	return GalleryView{
		Id:       FormatID(g.ID),
		Title:    g.Title,
		ImageURL: g.ImageURL,
		Category: g.Category,
	}
}
