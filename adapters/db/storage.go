package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/RINKESH2497/todo-app-fullstack/core"
)

type DB struct {
	log    *slog.Logger
	client *mongo.Client
	tasks  *mongo.Collection
	users  *mongo.Collection
}

func New(ctx context.Context, log *slog.Logger, uri, database string) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Error("connection problem", "uri", uri, "error", err)
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping %s: %w", uri, err)
	}

	d := client.Database(database)
	return &DB{
		log:    log,
		client: client,
		tasks:  d.Collection("tasks"),
		users:  d.Collection("users"),
	}, nil
}

func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

func (db *DB) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, readpref.Primary())
}

// documents

type taskDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId"`
	Text      string             `bson:"text"`
	Completed bool               `bson:"completed"`
	Priority  string             `bson:"priority"`
	Category  string             `bson:"category"`
	DueDate   *time.Time         `bson:"dueDate"`
	Order     int                `bson:"order"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d taskDoc) task() core.Task {
	return core.Task{
		ID:        d.ID.Hex(),
		UserID:    d.UserID.Hex(),
		Text:      d.Text,
		Completed: d.Completed,
		Priority:  core.Priority(d.Priority),
		Category:  d.Category,
		DueDate:   d.DueDate,
		Order:     d.Order,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
}

func (d userDoc) user() core.User {
	return core.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
	}
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, core.ErrInvalidArgs
	}
	return oid, nil
}

// Tasks

func (db *DB) CreateTask(ctx context.Context, owner string, t core.Task) (core.Task, error) {
	oid, err := parseID(owner)
	if err != nil {
		return core.Task{}, err
	}

	// Append-to-end: one past the owner's current maximum. Not isolated
	// against a concurrent create by the same owner; an accepted race.
	order := 0
	var top taskDoc
	err = db.tasks.FindOne(ctx, bson.M{"userId": oid},
		options.FindOne().SetSort(bson.D{{Key: "order", Value: -1}})).Decode(&top)
	switch {
	case err == nil:
		order = top.Order + 1
	case errors.Is(err, mongo.ErrNoDocuments):
	default:
		return core.Task{}, fmt.Errorf("find max order: %w", err)
	}

	now := time.Now().UTC()
	doc := taskDoc{
		ID:        primitive.NewObjectID(),
		UserID:    oid,
		Text:      t.Text,
		Completed: t.Completed,
		Priority:  string(t.Priority),
		Category:  t.Category,
		DueDate:   t.DueDate,
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := db.tasks.InsertOne(ctx, doc); err != nil {
		return core.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return doc.task(), nil
}

func (db *DB) ListTasks(ctx context.Context, owner string) ([]core.Task, error) {
	oid, err := parseID(owner)
	if err != nil {
		return nil, err
	}

	cur, err := db.tasks.Find(ctx, bson.M{"userId": oid},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	var docs []taskDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}

	out := make([]core.Task, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.task())
	}
	return out, nil
}

func (db *DB) UpdateTask(ctx context.Context, owner, id string, p core.TaskPatch) (core.Task, error) {
	oid, err := parseID(owner)
	if err != nil {
		return core.Task{}, err
	}
	tid, err := parseID(id)
	if err != nil {
		return core.Task{}, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if p.Text != nil {
		set["text"] = *p.Text
	}
	if p.Completed != nil {
		set["completed"] = *p.Completed
	}
	if p.Priority != nil {
		set["priority"] = string(*p.Priority)
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.DueDate != nil {
		set["dueDate"] = *p.DueDate
	}
	if p.Order != nil {
		set["order"] = *p.Order
	}

	var doc taskDoc
	err = db.tasks.FindOneAndUpdate(ctx,
		bson.M{"_id": tid, "userId": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return core.Task{}, core.ErrNotFound
		}
		return core.Task{}, fmt.Errorf("update task: %w", err)
	}
	return doc.task(), nil
}

func (db *DB) DeleteTask(ctx context.Context, owner, id string) (core.Task, error) {
	oid, err := parseID(owner)
	if err != nil {
		return core.Task{}, err
	}
	tid, err := parseID(id)
	if err != nil {
		return core.Task{}, err
	}

	var doc taskDoc
	err = db.tasks.FindOneAndDelete(ctx, bson.M{"_id": tid, "userId": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return core.Task{}, core.ErrNotFound
		}
		return core.Task{}, fmt.Errorf("delete task: %w", err)
	}
	return doc.task(), nil
}

func (db *DB) SetTaskOrder(ctx context.Context, owner, id string, order int) (core.Task, error) {
	oid, err := parseID(owner)
	if err != nil {
		return core.Task{}, err
	}
	tid, err := parseID(id)
	if err != nil {
		// Stale client ids are skipped upstream, same as unowned ones.
		return core.Task{}, core.ErrNotFound
	}

	var doc taskDoc
	err = db.tasks.FindOneAndUpdate(ctx,
		bson.M{"_id": tid, "userId": oid},
		bson.M{"$set": bson.M{"order": order, "updatedAt": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return core.Task{}, core.ErrNotFound
		}
		return core.Task{}, fmt.Errorf("set task order: %w", err)
	}
	return doc.task(), nil
}

// Users

func (db *DB) CreateUser(ctx context.Context, u core.User) (core.User, error) {
	doc := userDoc{
		ID:           primitive.NewObjectID(),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}

	if _, err := db.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return core.User{}, core.ErrAlreadyExists
		}
		return core.User{}, fmt.Errorf("insert user: %w", err)
	}
	return doc.user(), nil
}

func (db *DB) UserByEmail(ctx context.Context, email string) (core.User, error) {
	var doc userDoc
	if err := db.users.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return core.User{}, core.ErrNotFound
		}
		return core.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return doc.user(), nil
}

func (db *DB) UserByID(ctx context.Context, id string) (core.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return core.User{}, core.ErrNotFound
	}

	var doc userDoc
	if err := db.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return core.User{}, core.ErrNotFound
		}
		return core.User{}, fmt.Errorf("get user by id: %w", err)
	}
	return doc.user(), nil
}
