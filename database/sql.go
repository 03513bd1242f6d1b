package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"withbliss-api/config"
	"withbliss-api/model"
)

var tables = []interface{}{
	&model.Package{},
	&model.Booking{},
	&model.ContactMessage{},
	&model.Gallery{},
}

// SQLStore keeps every entity in a relational database through gorm.
type SQLStore struct {
	db  *gorm.DB
	log zerolog.Logger
	now func() time.Time
}

func NewSQLStore(db *gorm.DB, logger zerolog.Logger) *SQLStore {
	return &SQLStore{db: db, log: logger, now: time.Now}
}

func OpenSQL(cfg config.DatabaseConfig, logger zerolog.Logger) (*SQLStore, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.PostgresDSN)
	case config.DriverMySQL:
		dialector = mysql.Open(cfg.MySQL.DSN())
	default:
		return nil, fmt.Errorf("driver %q is not a sql driver", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newGormLogger(logger)})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("cannot get connection pool: %w", err)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	return NewSQLStore(db, logger), nil
}

func newGormLogger(logger zerolog.Logger) gormlogger.Interface {
	gormLog := logger.With().Str("component", "gorm").Logger()
	return gormlogger.New(&gormLog, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

func (s *SQLStore) ListPackages(ctx context.Context) ([]model.Package, error) {
	packages := []model.Package{}
	if err := s.db.WithContext(ctx).Order("id").Find(&packages).Error; err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return packages, nil
}

func (s *SQLStore) CreatePackage(ctx context.Context, pkg *model.Package) error {
	if err := s.db.WithContext(ctx).Create(pkg).Error; err != nil {
		return fmt.Errorf("create package: %w", err)
	}
	return nil
}

func (s *SQLStore) UpdatePackage(ctx context.Context, id uint, patch model.PackagePatch) error {
	var pkg model.Package
	err := s.db.WithContext(ctx).First(&pkg, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("package %v: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("get package %v: %w", id, err)
	}

	if patch.IsEmpty() {
		return nil
	}
	if err := s.db.WithContext(ctx).Model(&pkg).Updates(patch.Columns()).Error; err != nil {
		return fmt.Errorf("update package %v: %w", id, err)
	}
	return nil
}

func (s *SQLStore) DeletePackage(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&model.Package{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete package %v: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("package %v: %w", id, ErrNotFound)
	}
	return nil
}

func (s *SQLStore) ListBookings(ctx context.Context) ([]model.Booking, error) {
	bookings := []model.Booking{}
	if err := s.db.WithContext(ctx).Order("id").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (s *SQLStore) CreateBooking(ctx context.Context, booking *model.Booking) error {
	stampSubmittedAt(&booking.SubmittedAt, s.now)
	if err := s.db.WithContext(ctx).Create(booking).Error; err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

func (s *SQLStore) ListContactMessages(ctx context.Context) ([]model.ContactMessage, error) {
	messages := []model.ContactMessage{}
	if err := s.db.WithContext(ctx).Order("id").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, nil
}

func (s *SQLStore) CreateContactMessage(ctx context.Context, msg *model.ContactMessage) error {
	stampSubmittedAt(&msg.SubmittedAt, s.now)
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}
	return nil
}

func (s *SQLStore) ListGalleries(ctx context.Context) ([]model.Gallery, error) {
	images := []model.Gallery{}
	if err := s.db.WithContext(ctx).Order("id").Find(&images).Error; err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	return images, nil
}

func (s *SQLStore) CreateGallery(ctx context.Context, img *model.Gallery) error {
	if err := s.db.WithContext(ctx).Create(img).Error; err != nil {
		return fmt.Errorf("create gallery image: %w", err)
	}
	return nil
}

func (s *SQLStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(tables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	s.log.Info().Msg("database tables initialized")
	return nil
}

func (s *SQLStore) Seed(ctx context.Context) (int, error) {
	db := s.db.WithContext(ctx)
	if err := db.Migrator().DropTable(tables...); err != nil {
		return 0, fmt.Errorf("drop tables: %w", err)
	}
	if err := s.Migrate(ctx); err != nil {
		return 0, err
	}

	packages := SamplePackages()
	if err := db.Create(&packages).Error; err != nil {
		return 0, fmt.Errorf("insert sample packages: %w", err)
	}
	return len(packages), nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
