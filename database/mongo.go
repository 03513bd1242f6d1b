package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"withbliss-api/config"
	"withbliss-api/model"
)

const countersCollection = "counters"

// MongoStore keeps every entity in its own collection. Integer identifiers
// come from a per-collection sequence in the counters collection.
type MongoStore struct {
	db  *mongo.Database
	log zerolog.Logger
	now func() time.Time
}

func NewMongoStore(db *mongo.Database, logger zerolog.Logger) *MongoStore {
	return &MongoStore{db: db, log: logger, now: time.Now}
}

func OpenMongo(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*MongoStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI)
	if cfg.MaxOpenConns > 0 {
		clientOptions.SetMaxPoolSize(uint64(cfg.MaxOpenConns))
	}
	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("db is not available: %w", err)
	}

	return NewMongoStore(client.Database(cfg.MongoDatabase), logger), nil
}

func (s *MongoStore) nextID(ctx context.Context, collection string) (uint, error) {
	var counter struct {
		Seq uint `bson:"seq"`
	}
	err := s.db.Collection(countersCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": collection},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next id for %v: %w", collection, err)
	}
	return counter.Seq, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection) ([]T, error) {
	cur, err := coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoStore) insert(ctx context.Context, collection string, id *uint, doc interface{}) error {
	next, err := s.nextID(ctx, collection)
	if err != nil {
		return err
	}
	*id = next
	_, err = s.db.Collection(collection).InsertOne(ctx, doc)
	return err
}

func (s *MongoStore) ListPackages(ctx context.Context) ([]model.Package, error) {
	packages, err := findAll[model.Package](ctx, s.db.Collection(model.Package{}.TableName()))
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return packages, nil
}

func (s *MongoStore) CreatePackage(ctx context.Context, pkg *model.Package) error {
	if err := s.insert(ctx, pkg.TableName(), &pkg.ID, pkg); err != nil {
		return fmt.Errorf("create package: %w", err)
	}
	return nil
}

func (s *MongoStore) UpdatePackage(ctx context.Context, id uint, patch model.PackagePatch) error {
	coll := s.db.Collection(model.Package{}.TableName())
	filter := bson.M{"_id": id}

	if patch.IsEmpty() {
		n, err := coll.CountDocuments(ctx, filter)
		if err != nil {
			return fmt.Errorf("get package %v: %w", id, err)
		}
		if n == 0 {
			return fmt.Errorf("package %v: %w", id, ErrNotFound)
		}
		return nil
	}

	res, err := coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M(patch.Columns())})
	if err != nil {
		return fmt.Errorf("update package %v: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("package %v: %w", id, ErrNotFound)
	}
	return nil
}

func (s *MongoStore) DeletePackage(ctx context.Context, id uint) error {
	res, err := s.db.Collection(model.Package{}.TableName()).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete package %v: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("package %v: %w", id, ErrNotFound)
	}
	return nil
}

func (s *MongoStore) ListBookings(ctx context.Context) ([]model.Booking, error) {
	bookings, err := findAll[model.Booking](ctx, s.db.Collection(model.Booking{}.TableName()))
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (s *MongoStore) CreateBooking(ctx context.Context, booking *model.Booking) error {
	stampSubmittedAt(&booking.SubmittedAt, s.now)
	if err := s.insert(ctx, booking.TableName(), &booking.ID, booking); err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

func (s *MongoStore) ListContactMessages(ctx context.Context) ([]model.ContactMessage, error) {
	messages, err := findAll[model.ContactMessage](ctx, s.db.Collection(model.ContactMessage{}.TableName()))
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, nil
}

func (s *MongoStore) CreateContactMessage(ctx context.Context, msg *model.ContactMessage) error {
	stampSubmittedAt(&msg.SubmittedAt, s.now)
	if err := s.insert(ctx, msg.TableName(), &msg.ID, msg); err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}
	return nil
}

func (s *MongoStore) ListGalleries(ctx context.Context) ([]model.Gallery, error) {
	images, err := findAll[model.Gallery](ctx, s.db.Collection(model.Gallery{}.TableName()))
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	return images, nil
}

func (s *MongoStore) CreateGallery(ctx context.Context, img *model.Gallery) error {
	if err := s.insert(ctx, img.TableName(), &img.ID, img); err != nil {
		return fmt.Errorf("create gallery image: %w", err)
	}
	return nil
}

// Migrate is a no-op: collections are created on first insert.
func (s *MongoStore) Migrate(ctx context.Context) error {
	return nil
}

func (s *MongoStore) Seed(ctx context.Context) (int, error) {
	for _, name := range []string{
		model.Package{}.TableName(),
		model.Booking{}.TableName(),
		model.ContactMessage{}.TableName(),
		model.Gallery{}.TableName(),
		countersCollection,
	} {
		if err := s.db.Collection(name).Drop(ctx); err != nil {
			return 0, fmt.Errorf("drop %v: %w", name, err)
		}
	}

	packages := SamplePackages()
	for i := range packages {
		if err := s.CreatePackage(ctx, &packages[i]); err != nil {
			return i, fmt.Errorf("insert sample packages: %w", err)
		}
	}
	return len(packages), nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.db.Client().Disconnect(ctx)
	if errors.Is(err, mongo.ErrClientDisconnected) {
		return nil
	}
	return err
}
