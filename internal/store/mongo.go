package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/todo-webapp/app/internal/models"
)

const (
	// DefaultMongoDatabase is the default for MongoConfig.Database.
	DefaultMongoDatabase = "todoapp"

	// DefaultUsersCollection is the default for MongoConfig.UsersCollection.
	DefaultUsersCollection = "users"

	// DefaultTodosCollection is the default for MongoConfig.TodosCollection.
	DefaultTodosCollection = "todos"
)

// MongoConfig holds Mongo store configuration.
// A zero value is a valid configuration, see constants for default values.
type MongoConfig struct {
	// Database is the name of the database holding both collections.
	Database string

	// UsersCollection is the name of the accounts collection.
	UsersCollection string

	// TodosCollection is the name of the todos collection.
	TodosCollection string
}

// Mongo implements UserStore and TodoStore on MongoDB. It's safe to use
// concurrently from multiple goroutines.
type Mongo struct {
	users *mongo.Collection
	todos *mongo.Collection
}

// userDoc and todoDoc are the wire shapes; ObjectIDs are exposed to callers
// as their hex form in the string ID fields of the models.
type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

type todoDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     string             `bson:"uid"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

// NewMongo creates a new Mongo store.
// This function panics if client is nil.
func NewMongo(client *mongo.Client, cfg MongoConfig) *Mongo {
	if client == nil {
		panic("client must be provided")
	}

	if cfg.Database == "" {
		cfg.Database = DefaultMongoDatabase
	}
	if cfg.UsersCollection == "" {
		cfg.UsersCollection = DefaultUsersCollection
	}
	if cfg.TodosCollection == "" {
		cfg.TodosCollection = DefaultTodosCollection
	}

	db := client.Database(cfg.Database)
	return &Mongo{
		users: db.Collection(cfg.UsersCollection),
		todos: db.Collection(cfg.TodosCollection),
	}
}

// EnsureIndexes creates the unique email index and the owner/creation-time
// index. Should be called once at startup.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = m.todos.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "uid", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

func (m *Mongo) CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error) {
	doc := userDoc{
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	res, err := m.users.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &models.User{
		ID:           res.InsertedID.(primitive.ObjectID).Hex(),
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
	}, nil
}

func (m *Mongo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var doc userDoc
	err := m.users.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &models.User{
		ID:           doc.ID.Hex(),
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
	}, nil
}

func (m *Mongo) TodosByOwner(ctx context.Context, ownerID string) ([]models.Todo, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := m.todos.Find(ctx, bson.M{"uid": ownerID}, opts)
	if err != nil {
		return nil, err
	}

	var docs []todoDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	todos := make([]models.Todo, 0, len(docs))
	for _, doc := range docs {
		todos = append(todos, models.Todo{
			ID:          doc.ID.Hex(),
			OwnerID:     doc.OwnerID,
			Title:       doc.Title,
			Description: doc.Description,
			CreatedAt:   doc.CreatedAt,
		})
	}
	return todos, nil
}

func (m *Mongo) CreateTodo(ctx context.Context, ownerID, title, description string) (string, error) {
	doc := todoDoc{
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	res, err := m.todos.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}

	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (m *Mongo) UpdateTodo(ctx context.Context, id, title, description string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	// Only title and description may change; uid and createdAt stay as written.
	res, err := m.todos.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{"title": title, "description": description},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) DeleteTodo(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	_, err = m.todos.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
