package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/teamtrack/task-tracker/internal/core/domain"
	"github.com/teamtrack/task-tracker/internal/core/ports"
)

const (
	collectionTasks    = "tasks"
	collectionCounters = "counters"
	taskNumberCounter  = "task_number"
)

type TaskRepository struct {
	col      *mongo.Collection
	counters *mongo.Collection
	users    *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{
		col:      db.Collection(collectionTasks),
		counters: db.Collection(collectionCounters),
		users:    db.Collection(collectionUsers),
	}
}

// Create inserts a new task, assigning its id and the next task number from
// the counters collection. Numbers are unique and monotonically increasing;
// a crash between the counter bump and the insert may leave a gap, which is
// acceptable.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	seq, err := r.nextTaskNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("assign task number: %w", err)
	}

	task.ID = uuid.NewString()
	task.TaskNumber = seq

	if _, err := r.col.InsertOne(ctx, task); err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return task, nil
}

// nextTaskNumber atomically increments and returns the shared sequence.
func (r *TaskRepository) nextTaskNumber(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": taskNumberCounter},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var task domain.Task
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&task); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &task, nil
}

// List returns a page of tasks matching the filter, newest first with id as
// a deterministic tiebreak.
func (r *TaskRepository) List(ctx context.Context, filter ports.TaskFilter, page, perPage int64) ([]domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != nil {
		query["status"] = string(*filter.Status)
	}
	if filter.Urgency != nil {
		query["urgency"] = string(*filter.Urgency)
	}
	if filter.TesterID != nil {
		query["tester_id"] = *filter.TesterID
	}
	if filter.AssignedBy != nil {
		query["assigned_by"] = *filter.AssignedBy
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip((page - 1) * perPage).
		SetLimit(perPage)

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer cur.Close(ctx)

	var tasks []domain.Task
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return tasks, nil
}

// Update replaces the stored document in a single atomic operation.
func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": task.ID}, task)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("delete task: %w", err)
	}
	return res.DeletedCount, nil
}

// EmployeeStats joins users against the tasks assigned to them as tester
// and projects total/completed/in-progress counts per non-admin user,
// ordered by full name.
func (r *TaskRepository) EmployeeStats(ctx context.Context) ([]ports.EmployeeStatsRow, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"role": bson.M{"$ne": string(domain.RoleAdmin)}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionTasks,
			"localField":   "_id",
			"foreignField": "tester_id",
			"as":           "assigned",
		}}},
		{{Key: "$project", Value: bson.M{
			"full_name":   1,
			"total_tasks": bson.M{"$size": "$assigned"},
			"completed_tasks": bson.M{"$size": bson.M{"$filter": bson.M{
				"input": "$assigned",
				"cond": bson.M{"$in": bson.A{
					"$$this.status",
					bson.A{string(domain.StatusDone), string(domain.StatusClosed)},
				}},
			}}},
			"in_progress_tasks": bson.M{"$size": bson.M{"$filter": bson.M{
				"input": "$assigned",
				"cond":  bson.M{"$eq": bson.A{"$$this.status", string(domain.StatusInProgress)}},
			}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "full_name", Value: 1}}}},
	}

	cur, err := r.users.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate employee stats: %w", err)
	}
	defer cur.Close(ctx)

	var rows []ports.EmployeeStatsRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode employee stats: %w", err)
	}
	return rows, nil
}

// EnsureIndexes creates the lookup indexes used by list filters and the
// statistics aggregation.
func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "task_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tester_id", Value: 1}}},
		{Keys: bson.D{{Key: "assigned_by", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
