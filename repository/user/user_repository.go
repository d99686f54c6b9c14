package user

import (
	"context"
	"time"

	"github.com/houzze/houzze-api/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const userCollection = "users"

type Mongo struct {
	coll *mongo.Collection
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &Mongo{coll: db.Collection(userCollection)}
}

// EnsureIndexes creates the unique email index.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (m *Mongo) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	data.CreatedAt = time.Now().UTC()

	res, err := m.coll.InsertOne(ctx, data)
	if err != nil {
		return nil, err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		data.ID = oid
	}
	return data, nil
}

func (m *Mongo) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := bson.M{}

	if !filter.ID.IsZero() {
		query["_id"] = filter.ID
	}
	if filter.Email != "" {
		query["email"] = filter.Email
	}

	var entity model.UserEntity
	if err := m.coll.FindOne(ctx, query).Decode(&entity); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
