package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tu-usuario/negocio-pro/internal/domain"
	"github.com/tu-usuario/negocio-pro/internal/domain/docstore"
)

var _ docstore.Store = (*Store)(nil)

// Store implementación del almacén de documentos sobre MongoDB. Cada colección
// del puerto corresponde a una colección de la base; el _id generado se expone
// como hex. El documento singleton de system_config usa su id fijo como string.
type Store struct {
	db *mongo.Database
}

// NewStore construye el adaptador sobre una base de datos ya conectada.
func NewStore(client *mongo.Client, database string) *Store {
	return &Store{db: client.Database(database)}
}

// List devuelve todos los documentos de la colección.
func (s *Store) List(ctx context.Context, collection string) ([]docstore.Document, error) {
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	var docs []docstore.Document
	for cur.Next(ctx) {
		var m bson.M
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode %s: %w", collection, err)
		}
		docs = append(docs, toDocument(m))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("cursor %s: %w", collection, err)
	}
	return docs, nil
}

// Get obtiene un documento por id.
func (s *Store) Get(ctx context.Context, collection, id string) (*docstore.Document, error) {
	var m bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": docID(id)}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	doc := toDocument(m)
	return &doc, nil
}

// Create inserta un documento y devuelve el id generado por el servidor.
func (s *Store) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, bson.M(fields))
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", collection, err)
	}
	return idToString(res.InsertedID), nil
}

// Update aplica un $set parcial sobre el documento.
func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	res, err := s.db.Collection(collection).UpdateOne(ctx,
		bson.M{"_id": docID(id)},
		bson.M{"$set": bson.M(fields)},
	)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un documento por id.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": docID(id)})
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Increment delega en $inc con upsert: el incremento es atómico en el servidor,
// aunque haya llamadores concurrentes, y crea el documento partiendo de cero.
func (s *Store) Increment(ctx context.Context, collection, id, field string, delta int64) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var m bson.M
	err := s.db.Collection(collection).FindOneAndUpdate(ctx,
		bson.M{"_id": docID(id)},
		bson.M{"$inc": bson.M{field: delta}},
		opts,
	).Decode(&m)
	if err != nil {
		return 0, fmt.Errorf("increment %s/%s.%s: %w", collection, id, field, err)
	}

	switch n := m[field].(type) {
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("increment %s/%s.%s: valor %T no numérico", collection, id, field, m[field])
	}
}

// docID interpreta el id: hex de ObjectID para documentos generados, string
// crudo para ids fijos (ej. system_config/invoice).
func docID(id string) any {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return id
}

func idToString(raw any) string {
	switch v := raw.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func toDocument(m bson.M) docstore.Document {
	doc := docstore.Document{Fields: make(map[string]any, len(m))}
	for k, v := range m {
		if k == "_id" {
			doc.ID = idToString(v)
			continue
		}
		doc.Fields[k] = normalize(v)
	}
	return doc
}

// normalize convierte los tipos BSON de documentos y arreglos anidados a los
// map[string]any / []any del puerto.
func normalize(v any) any {
	switch val := v.(type) {
	case bson.M:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(val))
		for _, e := range val {
			out[e.Key] = normalize(e.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}
