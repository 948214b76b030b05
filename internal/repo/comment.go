package repo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkordes/wanderwise/backend/internal/domain"
)

// CommentsKey is the KVStore key holding the whole comment mapping.
const CommentsKey = "wanderwiseComments"

// CommentRepo is the append-only comment store.
type CommentRepo interface {
	// Append timestamps a new comment, adds it to the end of the
	// destination's list and persists the whole mapping.
	Append(ctx context.Context, destinationID, name, text string) (domain.Comment, error)

	// ListByDestination returns the destination's comments in insertion
	// order. Always returns a non-nil slice.
	ListByDestination(ctx context.Context, destinationID string) ([]domain.Comment, error)
}

// kvCommentRepo reads the mapping from the KVStore on every call and appends
// through KVStore.Update, so processes sharing a store never overwrite each
// other's comments.
type kvCommentRepo struct {
	kv  KVStore
	now func() time.Time
	log *slog.Logger
}

// NewCommentRepo constructs a CommentRepo over kv. now supplies comment
// timestamps, formatted in UTC; nil means time.Now. log receives decode
// warnings; nil means slog.Default().
func NewCommentRepo(kv KVStore, now func() time.Time, log *slog.Logger) CommentRepo {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = slog.Default()
	}
	return &kvCommentRepo{kv: kv, now: now, log: log}
}

func (r *kvCommentRepo) Append(ctx context.Context, destinationID, name, text string) (domain.Comment, error) {
	c := domain.Comment{Name: name, Text: text, Time: r.now().UTC().Format(domain.CommentTimeLayout)}

	err := r.kv.Update(ctx, CommentsKey, func(blob string, ok bool) (string, error) {
		m := r.decode(ctx, blob, ok)
		m[destinationID] = append(m[destinationID], c)
		return EncodeComments(m)
	})
	if err != nil {
		return domain.Comment{}, fmt.Errorf("repo.CommentRepo.Append: %w", err)
	}
	return c, nil
}

func (r *kvCommentRepo) ListByDestination(ctx context.Context, destinationID string) ([]domain.Comment, error) {
	blob, ok, err := r.kv.Get(ctx, CommentsKey)
	if err != nil {
		return nil, fmt.Errorf("repo.CommentRepo.ListByDestination: %w", err)
	}
	return append([]domain.Comment{}, r.decode(ctx, blob, ok)[destinationID]...), nil
}

// decode parses a stored blob. A blob that does not decode is replaced by an
// empty mapping; the next append overwrites it.
func (r *kvCommentRepo) decode(ctx context.Context, blob string, ok bool) domain.CommentMap {
	if !ok {
		return domain.CommentMap{}
	}
	m, err := DecodeComments(blob)
	if err != nil {
		r.log.WarnContext(ctx, "discarding malformed comment data", "key", CommentsKey, "error", err)
		return domain.CommentMap{}
	}
	return m
}

// EncodeComments serializes m as compact JSON without HTML escaping, so a
// blob read back and re-encoded is byte-identical.
func EncodeComments(m domain.CommentMap) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// DecodeComments parses a stored comment blob. A JSON null decodes to an
// empty mapping.
func DecodeComments(blob string) (domain.CommentMap, error) {
	var m domain.CommentMap
	if err := json.Unmarshal([]byte(blob), &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = domain.CommentMap{}
	}
	return m, nil
}
