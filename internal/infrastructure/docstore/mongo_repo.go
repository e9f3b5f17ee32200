package docstore

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"github.com/leon37/NetoLedger/internal/model"
	"github.com/leon37/NetoLedger/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MongoAssetRepository reads asset documents from a Mongo collection.
type MongoAssetRepository struct {
	client *MongoClient
}

// NewMongoAssetRepository returns the Mongo-backed AssetRepo.
func NewMongoAssetRepository(client *MongoClient) repository.AssetRepo {
	return &MongoAssetRepository{client: client}
}

func (r *MongoAssetRepository) FindByUser(ctx context.Context, uid string) ([]model.AssetRecord, error) {
	cursor, err := r.client.collection.Find(ctx, bson.M{repository.UserIDField: uid})
	if err != nil {
		slog.Error("mongo find failed", "uid", uid, "error", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrUpstreamData, err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: decode assets: %v", repository.ErrUpstreamData, err)
	}

	records := make([]model.AssetRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, model.AssetRecord(fromBSON(doc).(map[string]any)))
	}
	return records, nil
}

// fromBSON rewrites BSON-specific values into plain Go values: ids as hex,
// dates as time.Time, nested documents as maps.
func fromBSON(v any) any {
	switch t := v.(type) {
	case bson.M:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = fromBSON(val)
		}
		return m
	case map[string]any:
		return fromBSON(bson.M(t))
	case bson.D:
		m := make(map[string]any, len(t))
		for _, e := range t {
			m[e.Key] = fromBSON(e.Value)
		}
		return m
	case bson.A:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = fromBSON(val)
		}
		return s
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.Timestamp:
		return time.Unix(int64(t.T), 0).UTC()
	case primitive.Decimal128:
		return t.String()
	case primitive.Binary:
		return base64.StdEncoding.EncodeToString(t.Data)
	case primitive.Regex:
		return t.String()
	case primitive.Null, primitive.Undefined:
		return nil
	}
	return v
}
