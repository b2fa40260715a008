package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/tu-usuario/negocio-pro/internal/domain"
	"github.com/tu-usuario/negocio-pro/internal/domain/docstore"
)

var _ docstore.Store = (*Store)(nil)

// Store implementación en memoria del almacén de documentos. Se usa en tests y
// para desarrollo local sin MongoDB. Las operaciones clonan los campos para que
// el llamador nunca comparta memoria con el almacén.
type Store struct {
	mu   sync.RWMutex
	data map[string]map[string]map[string]any // colección -> id -> campos
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{data: make(map[string]map[string]map[string]any)}
}

// List devuelve todos los documentos de la colección.
func (s *Store) List(_ context.Context, collection string) ([]docstore.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	col := s.data[collection]
	docs := make([]docstore.Document, 0, len(col))
	for id, fields := range col {
		docs = append(docs, docstore.Document{ID: id, Fields: cloneFields(fields)})
	}
	return docs, nil
}

// Get obtiene un documento por id.
func (s *Store) Get(_ context.Context, collection, id string) (*docstore.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields, ok := s.data[collection][id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &docstore.Document{ID: id, Fields: cloneFields(fields)}, nil
}

// Create inserta un documento con id generado.
func (s *Store) Create(_ context.Context, collection string, fields map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data[collection] == nil {
		s.data[collection] = make(map[string]map[string]any)
	}
	id := uuid.New().String()
	s.data[collection][id] = cloneFields(fields)
	return id, nil
}

// Update aplica una actualización parcial de campos.
func (s *Store) Update(_ context.Context, collection, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.data[collection][id]
	if !ok {
		return domain.ErrNotFound
	}
	for k, v := range cloneFields(fields) {
		doc[k] = v
	}
	return nil
}

// Delete elimina un documento por id.
func (s *Store) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[collection][id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.data[collection], id)
	return nil
}

// Increment suma delta a un campo numérico bajo el lock del almacén, creando el
// documento si no existe (mismo contrato upsert que el driver de MongoDB).
func (s *Store) Increment(_ context.Context, collection, id, field string, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data[collection] == nil {
		s.data[collection] = make(map[string]map[string]any)
	}
	doc, ok := s.data[collection][id]
	if !ok {
		doc = make(map[string]any)
		s.data[collection][id] = doc
	}

	current, err := asInt64(doc[field])
	if err != nil {
		return 0, fmt.Errorf("increment %s.%s: %w", collection, field, err)
	}
	next := current + delta
	doc[field] = next
	return next, nil
}

func asInt64(v any) (int64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("valor %T no numérico", v)
	}
}

// cloneFields copia campos incluyendo mapas y slices anidados (un nivel de
// documentos embebidos, suficiente para las líneas de venta/compra/producción).
func cloneFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneFields(val)
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = cloneValue(item)
		}
		return items
	case []map[string]any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = cloneFields(item)
		}
		return items
	default:
		return v
	}
}
