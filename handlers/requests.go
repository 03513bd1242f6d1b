package handlers

import (
	"fmt"

	"withbliss-api/model"
)

type packageRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       string  `json:"price" validate:"required"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

func (r packageRequest) toModel() model.Package {
	return model.Package{
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		Image:       r.Image,
	}
}

// packagePatchRequest is a partial update: absent fields are kept, and a
// null description or image clears the column.
type packagePatchRequest struct {
	Name        model.NullString `json:"name"`
	Price       model.NullString `json:"price"`
	Description model.NullString `json:"description"`
	Image       model.NullString `json:"image"`
}

// check rejects a name or price that is sent as null or empty.
func (r packagePatchRequest) check() error {
	required := []struct {
		field string
		value model.NullString
	}{
		{"name", r.Name},
		{"price", r.Price},
	}
	for _, f := range required {
		if !f.value.Set {
			continue
		}
		if f.value.Value == nil {
			return fmt.Errorf("%s must not be null", f.field)
		}
		if *f.value.Value == "" {
			return fmt.Errorf("%s must not be empty", f.field)
		}
	}
	return nil
}

func (r packagePatchRequest) toPatch() model.PackagePatch {
	return model.PackagePatch{
		Name:        r.Name.Value,
		Price:       r.Price.Value,
		Description: r.Description,
		Image:       r.Image,
	}
}

// bookingRequest accepts both frontend naming conventions. The public key
// wins; an empty or missing one falls back to the column-style key.
type bookingRequest struct {
	CustomerName string `json:"customer_name" validate:"required_without=UserName"`
	UserName     string `json:"user_name"`
	Contact      string `json:"contact" validate:"required_without=UserPhone"`
	UserPhone    string `json:"user_phone"`
	Date         string `json:"date"`
	EventDate    string `json:"event_date"`
	Package      string `json:"package"`
	UserEmail    string `json:"user_email"`
}

func (r bookingRequest) toModel() model.Booking {
	return model.Booking{
		UserName:    firstNonEmpty(r.CustomerName, r.UserName),
		UserEmail:   model.Optional(r.UserEmail),
		UserPhone:   firstNonEmpty(r.Contact, r.UserPhone),
		EventDate:   model.Optional(firstNonEmpty(r.Date, r.EventDate)),
		PackageName: model.Optional(r.Package),
	}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func (r contactRequest) toModel() model.ContactMessage {
	return model.ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Message: r.Message,
	}
}

type galleryRequest struct {
	Title    *string `json:"title"`
	ImageURL string  `json:"image_url" validate:"required"`
	Category *string `json:"category"`
}

func (r galleryRequest) toModel() model.Gallery {
	return model.Gallery{
		Title:    r.Title,
		ImageURL: r.ImageURL,
		Category: r.Category,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
