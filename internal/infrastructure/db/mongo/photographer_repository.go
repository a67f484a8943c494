package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/photographerlagbe/marketplace-api/internal/core/domain"
	"github.com/photographerlagbe/marketplace-api/internal/core/ports"
)

const collectionPhotographers = "photographers"

// PhotographerRepository persists photographer profiles. Portfolio edits use
// single-document array operators, so interleaved appends and removals are
// serialized by the storage engine and cannot corrupt the sequence.
type PhotographerRepository struct {
	col *mongo.Collection
}

func NewPhotographerRepository(db *mongo.Database) *PhotographerRepository {
	return &PhotographerRepository{col: db.Collection(collectionPhotographers)}
}

func (r *PhotographerRepository) Create(ctx context.Context, p *domain.Photographer) (*domain.Photographer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrProfileExists
		}
		return nil, mapTimeout(fmt.Errorf("insert photographer: %w", err))
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID)
	return &created, nil
}

func (r *PhotographerRepository) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) (*domain.Photographer, error) {
	return r.findOne(ctx, bson.M{"user": ownerID})
}

func (r *PhotographerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Photographer, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *PhotographerRepository) findOne(ctx context.Context, filter bson.M) (*domain.Photographer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Photographer
	if err := r.col.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, mapTimeout(fmt.Errorf("find photographer: %w", err))
	}
	return &p, nil
}

// Update writes every supplied field in one $set so a failed update never
// persists a subset of fields.
func (r *PhotographerRepository) Update(ctx context.Context, ownerID primitive.ObjectID, upd ports.ProfileUpdate) (*domain.Photographer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.BusinessName != nil {
		set["business_name"] = *upd.BusinessName
	}
	if upd.Bio != nil {
		set["bio"] = *upd.Bio
	}
	if upd.Specializations != nil {
		set["specializations"] = *upd.Specializations
	}
	if upd.Experience != nil {
		set["experience"] = *upd.Experience
	}
	if upd.HourlyRate != nil {
		set["hourly_rate"] = *upd.HourlyRate
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.Services != nil {
		set["services"] = *upd.Services
	}
	if upd.Availability != nil {
		set["availability"] = *upd.Availability
	}
	if upd.Equipment != nil {
		set["equipment"] = *upd.Equipment
	}
	if upd.Certifications != nil {
		set["certifications"] = *upd.Certifications
	}
	if upd.SocialMedia != nil {
		set["social_media"] = *upd.SocialMedia
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p domain.Photographer
	err := r.col.FindOneAndUpdate(ctx, bson.M{"user": ownerID}, bson.M{"$set": set}, opts).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, mapTimeout(fmt.Errorf("update photographer: %w", err))
	}
	return &p, nil
}

// PushPortfolioItem atomically inserts the item at the head of the sequence.
func (r *PhotographerRepository) PushPortfolioItem(ctx context.Context, ownerID primitive.ObjectID, item domain.PortfolioItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"user": ownerID}, bson.M{
		"$push": bson.M{"portfolio": bson.M{
			"$each":     bson.A{item},
			"$position": 0,
		}},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return mapTimeout(fmt.Errorf("push portfolio item: %w", err))
	}
	if res.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

// PullPortfolioItem removes the item by identity. The item id is part of the
// match filter, so pulling an id that is not (or no longer) present reports
// not-found instead of silently succeeding.
func (r *PhotographerRepository) PullPortfolioItem(ctx context.Context, ownerID, itemID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"user": ownerID, "portfolio._id": itemID},
		bson.M{
			"$pull": bson.M{"portfolio": bson.M{"_id": itemID}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return mapTimeout(fmt.Errorf("pull portfolio item: %w", err))
	}
	if res.MatchedCount == 0 {
		// Distinguish a missing profile from a missing item.
		n, err := r.col.CountDocuments(ctx, bson.M{"user": ownerID})
		if err != nil {
			return mapTimeout(fmt.Errorf("count photographer: %w", err))
		}
		if n == 0 {
			return domain.ErrProfileNotFound
		}
		return domain.ErrPortfolioItemNotFound
	}
	return nil
}

// List returns one page of active profiles plus a separate count of the same
// predicate, which keeps total/total_pages stable under concurrent inserts.
func (r *PhotographerRepository) List(ctx context.Context, filter ports.DirectoryFilter) ([]*domain.Photographer, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"is_active": true}
	if filter.City != "" {
		query["location.city"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.City), Options: "i"}
	}
	if filter.Specialization != "" {
		query["specializations"] = filter.Specialization
	}
	if filter.MinRate != nil || filter.MaxRate != nil {
		rate := bson.M{}
		if filter.MinRate != nil {
			rate["$gte"] = *filter.MinRate
		}
		if filter.MaxRate != nil {
			rate["$lte"] = *filter.MaxRate
		}
		query["hourly_rate"] = rate
	}

	order := -1
	if filter.SortAsc {
		order = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: filter.SortBy, Value: order}}).
		SetSkip(int64(filter.Page-1) * int64(filter.PageSize)).
		SetLimit(int64(filter.PageSize))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, mapTimeout(fmt.Errorf("list photographers: %w", err))
	}
	defer cursor.Close(ctx)

	var items []*domain.Photographer
	for cursor.Next(ctx) {
		var p domain.Photographer
		if err := cursor.Decode(&p); err != nil {
			return nil, 0, fmt.Errorf("decode photographer: %w", err)
		}
		item := p
		items = append(items, &item)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, mapTimeout(fmt.Errorf("iterate photographers: %w", err))
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, mapTimeout(fmt.Errorf("count photographers: %w", err))
	}
	return items, total, nil
}

// EnsureIndexes creates the unique owner index enforcing the 1:1 invariant
// plus the indexes backing directory filters and sorts.
func (r *PhotographerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "location.city", Value: 1}}},
		{Keys: bson.D{{Key: "specializations", Value: 1}}},
		{Keys: bson.D{{Key: "hourly_rate", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
