package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mealmate/internal/domain/entity"
	"mealmate/internal/domain/repository"
	"mealmate/pkg/errors"
)

type mongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &mongoUserRepository{
		collection: db.Collection("users"),
	}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *entity.User) (*entity.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return nil, errors.Internal("Failed to create user", err)
	}

	return toInsertResult(res), nil
}

func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"userEmail": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Internal("Failed to get user", err)
	}

	return &user, nil
}

func (r *mongoUserRepository) List(ctx context.Context, params repository.ListParams) ([]entity.User, error) {
	filter := ComposeFilter(params, userFacets)

	cursor, err := r.collection.Find(ctx, filter, ComposeFindOptions(params))
	if err != nil {
		return nil, errors.Internal("Failed to list users", err)
	}

	users := make([]entity.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, errors.Internal("Failed to decode users", err)
	}

	return users, nil
}

func (r *mongoUserRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, errors.Internal("Failed to count users", err)
	}

	return count, nil
}

func (r *mongoUserRepository) UpdateRole(ctx context.Context, id, role string) (*entity.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return nil, errors.Internal("Failed to update user role", err)
	}

	return toUpdateResult(res), nil
}

func (r *mongoUserRepository) UpsertBadgeByEmail(ctx context.Context, email, badge string) (*entity.UpdateResult, error) {
	filter := bson.M{"userEmail": email}
	update := bson.M{"$set": bson.M{"badge": badge}}

	res, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, errors.Internal("Failed to update user badge", err)
	}

	return toUpdateResult(res), nil
}
