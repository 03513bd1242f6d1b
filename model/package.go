package model

type Package struct {
	ID          uint    `gorm:"primaryKey" bson:"_id"`
	Name        string  `gorm:"size:100;not null" bson:"name"`
	Price       string  `gorm:"size:50;not null" bson:"price"`
	Description *string `gorm:"type:text" bson:"description"`
	Image       *string `gorm:"size:255" bson:"image"`
}

func (Package) TableName() string {
	return "packages"
}

type PackageView struct {
	Id          string  `json:"_id"`
	Name        string  `json:"name"`
	Price       string  `json:"price"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

func (p Package) View() PackageView {
	return PackageView{
		Id:          FormatID(p.ID),
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Image:       p.Image,
	}
}

// PackagePatch is a partial update. Nil Name or Price and unset
// Description or Image keep the stored value. A set Description or Image
// with a nil Value writes NULL.
type PackagePatch struct {
	Name        *string
	Price       *string
	Description NullString
	Image       NullString
}

func (p PackagePatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && !p.Description.Set && !p.Image.Set
}

// Columns lists the supplied fields keyed by column name. Cleared fields
// map to nil.
func (p PackagePatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	if p.Description.Set {
		cols["description"] = p.Description.column()
	}
	if p.Image.Set {
		cols["image"] = p.Image.column()
	}
	return cols
}
