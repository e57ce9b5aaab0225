package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	candidatesCollection = "candidates"
	votesCollection      = "votes"
	sessionsCollection   = "voting_sessions"
	employeesCollection  = "employees"
)

type MongoStore struct {
	client     *mongo.Client
	db         *mongo.Database
	candidates CandidateRepository
	votes      VoteRepository
	sessions   SessionRepository
	employees  EmployeeRepository
}

// NewMongoStore connects to uri and verifies the connection before returning.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := client.Database(database)
	return &MongoStore{
		client:     client,
		db:         db,
		candidates: NewCandidateRepository(db.Collection(candidatesCollection)),
		votes:      NewVoteRepository(db.Collection(votesCollection)),
		sessions:   NewSessionRepository(db.Collection(sessionsCollection)),
		employees:  NewEmployeeRepository(db.Collection(employeesCollection)),
	}, nil
}

func (s *MongoStore) Candidates() CandidateRepository { return s.candidates }
func (s *MongoStore) Votes() VoteRepository           { return s.votes }
func (s *MongoStore) Sessions() SessionRepository     { return s.sessions }
func (s *MongoStore) Employees() EmployeeRepository   { return s.employees }

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the queries rely on. Safe to call on
// every start. There is deliberately no unique (candidate, origin) index on
// votes: repeat votes are gated on the client.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		candidatesCollection: {
			{Keys: bson.D{{Key: "category", Value: 1}, {Key: "votes", Value: -1}}},
		},
		votesCollection: {
			{Keys: bson.D{{Key: "candidate_id", Value: 1}}},
			{Keys: bson.D{{Key: "ip_address", Value: 1}, {Key: "category", Value: 1}}},
		},
		sessionsCollection: {
			{Keys: bson.D{{Key: "category", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		employeesCollection: {
			{Keys: bson.D{{Key: "employee_code", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "has_won_prize", Value: 1}}},
		},
	}

	for name, idx := range indexes {
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}
	return nil
}
