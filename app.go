package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"krushidoctor/chat"
	"krushidoctor/diagnosis"
	"krushidoctor/taxonomy"
	"krushidoctor/weather"
)

type App struct {
	cfg Config
	log *zap.Logger

	mongo     *mongo.Client
	db        *mongo.Database
	users     *mongo.Collection
	diagnoses *mongo.Collection
	chats     *mongo.Collection
	images    *gridfs.Bucket

	registry  *taxonomy.Registry
	analyzer  diagnosis.Analyzer
	responder *chat.Responder
	weather   *weather.Client

	// Artificial typing delay for chat replies; zero when MockDelays is off.
	chatDelayFloor  time.Duration
	chatDelayJitter time.Duration
}

func newApp(ctx context.Context, cfg Config, log *zap.Logger) (*App, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.MongoDB)

	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName("diagnosis-images"))
	if err != nil {
		return nil, err
	}

	app := &App{
		cfg:       cfg,
		log:       log,
		mongo:     client,
		db:        db,
		users:     db.Collection("users"),
		diagnoses: db.Collection("diagnoses"),
		chats:     db.Collection("chat_history"),
		images:    bucket,
		registry:  taxonomy.NewRegistry(),
		responder: chat.NewResponder(),
		weather:   weather.NewClient(cfg.OpenWeatherKey),
	}

	analyzerOpts := []diagnosis.Option{}
	if cfg.MockDelays {
		app.chatDelayFloor = 1000 * time.Millisecond
		app.chatDelayJitter = 1000 * time.Millisecond
	} else {
		analyzerOpts = append(analyzerOpts, diagnosis.WithDelay(0, 0))
	}
	app.analyzer = diagnosis.NewMockAnalyzer(app.registry, analyzerOpts...)

	// Indexes
	if _, err := app.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return nil, err
	}
	if _, err := app.diagnoses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	}); err != nil {
		return nil, err
	}
	if _, err := app.chats.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: 1}},
	}); err != nil {
		return nil, err
	}

	return app, nil
}

func (a *App) close(ctx context.Context) { _ = a.mongo.Disconnect(ctx) }
