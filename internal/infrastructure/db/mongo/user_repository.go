package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/booknest/booknest-api/internal/core/domain"
)

const usersCollection = "users"

// UserRepository persists users with their saved-books list embedded in the
// same document. List mutations are single-document updates filtered on the
// element key, so MongoDB serializes them at element granularity: duplicate
// inserts match nothing and concurrent mutations of different ids both land.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type savedBookDoc struct {
	BookID      string   `bson:"book_id"`
	Title       string   `bson:"title"`
	Authors     []string `bson:"authors"`
	Description string   `bson:"description"`
	Image       string   `bson:"image,omitempty"`
	Link        string   `bson:"link,omitempty"`
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	SavedBooks   []savedBookDoc     `bson:"saved_books"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := userDoc{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		SavedBooks:   toBookDocs(user.SavedBooks),
		CreatedAt:    user.CreatedAt.Unix(),
		UpdatedAt:    user.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return toDomainUser(&doc), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// AddBook pushes the book only when no element with the same book_id exists.
// The $ne filter makes the insert-if-absent atomic; a duplicate simply matches
// no document and the current record is returned untouched.
func (r *UserRepository) AddBook(ctx context.Context, userID string, book domain.SavedBook) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"_id":                 oid,
		"saved_books.book_id": bson.M{"$ne": book.BookID},
	}
	update := bson.M{
		"$push": bson.M{"saved_books": toBookDoc(book)},
		"$set":  bson.M{"updated_at": time.Now().UTC().Unix()},
	}

	var doc userDoc
	err = r.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err == nil {
		return toDomainUser(&doc), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("add book: %w", err)
	}

	// Either the user does not exist or the book is already saved; a plain
	// lookup distinguishes the two.
	return r.findOne(ctx, bson.M{"_id": oid})
}

// RemoveBook pulls at most one element matching bookID. Pulling an absent id
// matches the user document and changes nothing.
func (r *UserRepository) RemoveBook(ctx context.Context, userID, bookID string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"saved_books": bson.M{"book_id": bookID}},
		"$set":  bson.M{"updated_at": time.Now().UTC().Unix()},
	}

	var doc userDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("remove book: %w", err)
	}
	return toDomainUser(&doc), nil
}

// EnsureIndexes creates the unique indexes backing the identity invariants.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return toDomainUser(&doc), nil
}

func toBookDoc(b domain.SavedBook) savedBookDoc {
	return savedBookDoc{
		BookID:      b.BookID,
		Title:       b.Title,
		Authors:     b.Authors,
		Description: b.Description,
		Image:       b.Image,
		Link:        b.Link,
	}
}

func toBookDocs(books []domain.SavedBook) []savedBookDoc {
	docs := make([]savedBookDoc, len(books))
	for i, b := range books {
		docs[i] = toBookDoc(b)
	}
	return docs
}

func toDomainUser(doc *userDoc) *domain.User {
	books := make([]domain.SavedBook, len(doc.SavedBooks))
	for i, b := range doc.SavedBooks {
		books[i] = domain.SavedBook{
			BookID:      b.BookID,
			Title:       b.Title,
			Authors:     b.Authors,
			Description: b.Description,
			Image:       b.Image,
			Link:        b.Link,
		}
	}
	return &domain.User{
		ID:           doc.ID.Hex(),
		Username:     doc.Username,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		SavedBooks:   books,
		CreatedAt:    unixToTime(doc.CreatedAt),
		UpdatedAt:    unixToTime(doc.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
