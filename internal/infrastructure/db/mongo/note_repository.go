package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/notewise/notes-api/internal/core/domain"
	"github.com/notewise/notes-api/internal/core/ports"
)

const collectionNotes = "notes"

// NoteRepository implements ports.NoteRepository using MongoDB.
type NoteRepository struct {
	col *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *NoteRepository {
	return &NoteRepository{col: db.Collection(collectionNotes)}
}

type mongoNote struct {
	NoteID      string    `bson:"note_id"`
	UserID      string    `bson:"user_id"`
	NoteTitle   string    `bson:"note_title"`
	NoteContent string    `bson:"note_content"`
	CreatedOn   time.Time `bson:"created_on"`
	LastUpdate  time.Time `bson:"last_update"`
}

func (r *NoteRepository) Insert(ctx context.Context, note *domain.Note) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toMongoNote(note)); err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

func (r *NoteRepository) FindByID(ctx context.Context, noteID, userID string) (*domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mn mongoNote
	err := r.col.FindOne(ctx, bson.M{"note_id": noteID, "user_id": userID}).Decode(&mn)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("find note: %w", err)
	}
	return mn.toDomain(), nil
}

// List returns one page of notes matching filter, sorted by last_update
// descending, and the total match count.
func (r *NoteRepository) List(ctx context.Context, filter ports.ListNotesFilter) ([]*domain.Note, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := listQuery(filter)

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count notes: %w", err)
	}

	skip := int64(filter.Page-1) * int64(filter.PerPage)
	opts := options.Find().
		SetSort(bson.D{{Key: "last_update", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(filter.PerPage))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find notes: %w", err)
	}
	defer cursor.Close(ctx)

	notes := make([]*domain.Note, 0, filter.PerPage)
	for cursor.Next(ctx) {
		var mn mongoNote
		if err := cursor.Decode(&mn); err != nil {
			return nil, 0, fmt.Errorf("decode note: %w", err)
		}
		notes = append(notes, mn.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate notes: %w", err)
	}

	return notes, total, nil
}

func (r *NoteRepository) Update(ctx context.Context, note *domain.Note) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"note_id": note.NoteID, "user_id": note.UserID}
	update := bson.M{"$set": bson.M{
		"note_title":   note.NoteTitle,
		"note_content": note.NoteContent,
		"last_update":  note.LastUpdate,
	}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("update note: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *NoteRepository) Delete(ctx context.Context, noteID, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"note_id": noteID, "user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("delete note: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the lookup indexes plus the compound index backing the
// default list sort.
func (r *NoteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "note_id", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "last_update", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// listQuery builds the bson filter: always scoped by user_id, with an optional
// case-insensitive substring match over title and content. The search term is
// quoted so regex metacharacters match literally.
func listQuery(filter ports.ListNotesFilter) bson.M {
	query := bson.M{"user_id": filter.UserID}
	if filter.Search != "" {
		pattern := regexp.QuoteMeta(filter.Search)
		query["$or"] = bson.A{
			bson.M{"note_title": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"note_content": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	return query
}

func toMongoNote(n *domain.Note) mongoNote {
	return mongoNote{
		NoteID:      n.NoteID,
		UserID:      n.UserID,
		NoteTitle:   n.NoteTitle,
		NoteContent: n.NoteContent,
		CreatedOn:   n.CreatedOn,
		LastUpdate:  n.LastUpdate,
	}
}

func (mn *mongoNote) toDomain() *domain.Note {
	return &domain.Note{
		NoteID:      mn.NoteID,
		UserID:      mn.UserID,
		NoteTitle:   mn.NoteTitle,
		NoteContent: mn.NoteContent,
		CreatedOn:   mn.CreatedOn.UTC(),
		LastUpdate:  mn.LastUpdate.UTC(),
	}
}
