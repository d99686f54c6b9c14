package vacancy

import (
	"context"

	"github.com/houzze/houzze-api/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const vacancyCollection = "vacancies"

type Mongo struct {
	coll *mongo.Collection
}

type VacancyRepository interface {
	Create(ctx context.Context, data *model.VacancyEntity) (*model.VacancyEntity, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.VacancyEntity, error)
	List(ctx context.Context, filter *model.VacancyFilter) ([]model.VacancyListItem, error)
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]model.VacancyEntity, error)
	UpdateOwned(ctx context.Context, id, ownerID primitive.ObjectID, data *model.VacancyEntity) (*model.VacancyEntity, error)
	DeleteOwned(ctx context.Context, id, ownerID primitive.ObjectID) (bool, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}

func NewVacancyRepository(db *mongo.Database) VacancyRepository {
	return &Mongo{coll: db.Collection(vacancyCollection)}
}

// EnsureIndexes creates the owner and creation-time indexes.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdBy", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: 1}}},
	})
	return err
}

func (m *Mongo) Create(ctx context.Context, data *model.VacancyEntity) (*model.VacancyEntity, error) {
	res, err := m.coll.InsertOne(ctx, data)
	if err != nil {
		return nil, err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		data.ID = oid
	}
	return data, nil
}

func (m *Mongo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.VacancyEntity, error) {
	var entity model.VacancyEntity
	if err := m.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&entity); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// List runs the filter-built match with sorting and resolves each vacancy's
// owner to a minimal {name, email} projection.
func (m *Mongo) List(ctx context.Context, filter *model.VacancyFilter) ([]model.VacancyListItem, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: BuildListQuery(filter)}},
		bson.D{{Key: "$sort", Value: BuildSort(filter)}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "createdBy",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$owner",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"owner.password_hash": 0,
			"owner.role":          0,
			"owner.createdAt":     0,
		}}},
	}

	cursor, err := m.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]model.VacancyListItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (m *Mongo) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]model.VacancyEntity, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := m.coll.Find(ctx, bson.M{"createdBy": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]model.VacancyEntity, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateOwned applies the full replacement fields to the vacancy matching both
// id and owner. A miss (absent or owned by someone else) returns (nil, nil);
// the two cases are indistinguishable on purpose.
func (m *Mongo) UpdateOwned(ctx context.Context, id, ownerID primitive.ObjectID, data *model.VacancyEntity) (*model.VacancyEntity, error) {
	update := bson.M{"$set": bson.M{
		"title":         data.Title,
		"description":   data.Description,
		"rent":          data.Rent,
		"deposit":       data.Deposit,
		"address":       data.Address,
		"postcode":      data.Postcode,
		"bedrooms":      data.Bedrooms,
		"bathrooms":     data.Bathrooms,
		"contact":       data.Contact,
		"name":          data.Name,
		"email":         data.Email,
		"benefits":      data.Benefits,
		"nationality":   data.Nationality,
		"category":      data.Category,
		"roomType":      data.RoomType,
		"preferredType": data.PreferredType,
		"bills":         data.Bills,
		"parking":       data.Parking,
		"smoker":        data.Smoker,
		"pets":          data.Pets,
		"available":     data.Available,
		"images":        data.Images,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.VacancyEntity
	err := m.coll.FindOneAndUpdate(ctx, bson.M{"_id": id, "createdBy": ownerID}, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

// DeleteOwned removes the vacancy matching both id and owner and reports
// whether anything was deleted.
func (m *Mongo) DeleteOwned(ctx context.Context, id, ownerID primitive.ObjectID) (bool, error) {
	res := m.coll.FindOneAndDelete(ctx, bson.M{"_id": id, "createdBy": ownerID})
	if err := res.Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DeleteByID removes a vacancy regardless of owner. Used by the expiration worker.
func (m *Mongo) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := m.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
