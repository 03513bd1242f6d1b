package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"withbliss-api/config"
	"withbliss-api/model"
)

// ErrNotFound is returned when an identifier matches no row.
var ErrNotFound = errors.New("record not found")

// Store is the entity store shared by every request. Implementations are
// safe for concurrent use.
type Store interface {
	ListPackages(ctx context.Context) ([]model.Package, error)
	CreatePackage(ctx context.Context, pkg *model.Package) error
	UpdatePackage(ctx context.Context, id uint, patch model.PackagePatch) error
	DeletePackage(ctx context.Context, id uint) error

	ListBookings(ctx context.Context) ([]model.Booking, error)
	CreateBooking(ctx context.Context, booking *model.Booking) error

	ListContactMessages(ctx context.Context) ([]model.ContactMessage, error)
	CreateContactMessage(ctx context.Context, msg *model.ContactMessage) error

	ListGalleries(ctx context.Context) ([]model.Gallery, error)
	CreateGallery(ctx context.Context, img *model.Gallery) error

	// Migrate creates missing tables. Existing tables are left as they are.
	Migrate(ctx context.Context) error
	// Seed drops every table, recreates the schema and inserts the sample
	// packages. It returns the number of packages inserted.
	Seed(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
	Close() error
}

// Open connects to the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (Store, error) {
	logger = logger.With().Str("component", "database").Str("driver", cfg.Driver).Logger()

	switch cfg.Driver {
	case config.DriverSQLite, config.DriverPostgres, config.DriverMySQL:
		return OpenSQL(cfg, logger)
	case config.DriverMongo:
		return OpenMongo(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// SamplePackages are the rows inserted by Seed.
func SamplePackages() []model.Package {
	return []model.Package{
		{
			Name:        "Royal Baby Shower",
			Price:       "20000",
			Description: model.Optional("Premium themed backdrop, pastel balloon decor, cradle decoration, and welcome banner."),
			Image:       model.Optional("assets/baby-shower.jpg"),
		},
		{
			Name:        "Magic Birthday Party",
			Price:       "15000",
			Description: model.Optional("Colorful balloon arch, personalized cake table setup, and party props for all ages."),
			Image:       model.Optional("assets/birthday.jpg"),
		},
		{
			Name:        "Grand Engagement",
			Price:       "35000",
			Description: model.Optional("Elegant floral stage backdrop, luxury LED lighting, and romantic table centerpieces."),
			Image:       model.Optional("assets/engagement.jpg"),
		},
	}
}

func stampSubmittedAt(submittedAt *string, now func() time.Time) {
	if *submittedAt == "" {
		*submittedAt = model.Timestamp(now())
	}
}
