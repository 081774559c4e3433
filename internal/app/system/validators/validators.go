// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"github.com/dalemusser/pokerhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates collections (if missing) and tries to attach JSON-Schema
// validators. On servers that don't support collMod/validators (e.g. some
// DocumentDB versions), we log and skip gracefully.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	// helper: ensure collection exists (with truthful logging) and then validator (if provided)
	ensure := func(coll string, schema bson.M) {
		if _, err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			// DocumentDB or other deployments may not support collMod/validators.
			if isNoSuchCommand(err) || isNotImplemented(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	ensure("users", usersSchema())
	ensure("sessions", sessionsSchema())

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* ---------------------- collection helpers & logging ---------------------- */

// collectionExists returns true when <name> already exists.
// Uses ListCollectionNames to avoid "created collection" log when it didn't.
func collectionExists(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// ensureCollection idempotently makes sure <name> exists.
// Returns created==true only if we actually created it.
func ensureCollection(ctx context.Context, db *mongo.Database, name string) (created bool, err error) {
	exists, listErr := collectionExists(ctx, db, name)
	if listErr == nil && exists {
		zap.L().Info("collection exists", zap.String("collection", name))
		return false, nil
	}
	// If listing failed, fall back to create-and-handle-race.
	if err := db.CreateCollection(ctx, name); err != nil {
		// NamespaceExists / already exists is fine (race or prior run).
		if isNamespaceExistsErr(err) {
			zap.L().Info("collection exists", zap.String("collection", name))
			return false, nil
		}
		zap.L().Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return true, nil
}

/* ------------------------------ validators ------------------------------- */

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	var out bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&out); err != nil {
		return err
	}
	zap.L().Info("validator ensured", zap.String("collection", name))
	return nil
}

/* ------------------------- error helpers ------------------------- */

func isNamespaceExistsErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 48 || strings.Contains(strings.ToLower(ce.Message), "already exists")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}

func isNoSuchCommand(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 59 || strings.Contains(strings.ToLower(ce.Message), "no such command")) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "no such command")
}

func isNotImplemented(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 115 ||
		strings.Contains(strings.ToLower(ce.Message), "not implemented") ||
		strings.Contains(strings.ToLower(ce.Message), "not supported")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "not implemented") || strings.Contains(s, "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

func enumOf(values []string) bson.A {
	out := bson.A{}
	for _, v := range values {
		out = append(out, v)
	}
	return out
}

// estimateType matches a number or a label.
var estimateType = bson.A{"double", "int", "long", "string"}

func usersSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"first_name", "last_name", "email", "password", "roles", "is_active"},
			"properties": bson.M{
				"first_name":        bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"last_name":         bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"date_of_birth":     bson.M{"bsonType": "date"},
				"registration_date": bson.M{"bsonType": "date"},
				"email":             bson.M{"bsonType": "string", "minLength": 3},
				"password":          bson.M{"bsonType": "string", "minLength": 1},
				"token":             bson.M{"bsonType": bson.A{"string", "null"}},
				"roles": bson.M{
					"bsonType": "array",
					"items":    bson.M{"enum": enumOf(models.UserRoles)},
				},
				"is_active":  bson.M{"bsonType": "bool"},
				"created_at": bson.M{"bsonType": "date"},
				"updated_at": bson.M{"bsonType": "date"},
			},
		},
	}
}

func sessionsSchema() bson.M {
	vote := bson.M{
		"bsonType": "object",
		"required": bson.A{"user_id", "value"},
		"properties": bson.M{
			"user_id":   bson.M{"bsonType": "objectId"},
			"value":     bson.M{"bsonType": estimateType},
			"timestamp": bson.M{"bsonType": "date"},
		},
	}
	story := bson.M{
		"bsonType": "object",
		"required": bson.A{"title", "description"},
		"properties": bson.M{
			"title":            bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
			"description":      bson.M{"bsonType": "string", "minLength": 1},
			"priority":         bson.M{"enum": enumOf(models.StoryPriorities)},
			"status":           bson.M{"enum": enumOf(models.StoryStatuses)},
			"votes":            bson.M{"bsonType": bson.A{"array", "null"}, "items": vote},
			"final_estimation": bson.M{"bsonType": append(bson.A{"null"}, estimateType...)},
		},
	}

	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "start_date", "duration", "facilitator", "status", "estimation_type", "visibility"},
			"properties": bson.M{
				"name":            bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"start_date":      bson.M{"bsonType": "date"},
				"end_date":        bson.M{"bsonType": "date"},
				"duration":        bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 1},
				"status":          bson.M{"enum": enumOf(models.SessionStatuses)},
				"facilitator":     bson.M{"bsonType": "objectId"},
				"participants":    bson.M{"bsonType": bson.A{"array", "null"}, "items": bson.M{"bsonType": "objectId"}},
				"estimation_type": bson.M{"enum": enumOf(models.EstimationTypes)},
				"custom_estimation_values": bson.M{
					"bsonType": bson.A{"array", "null"},
					"items":    bson.M{"bsonType": estimateType},
				},
				"visibility":   bson.M{"enum": enumOf(models.Visibilities)},
				"access_code":  bson.M{"bsonType": "string"},
				"user_stories": bson.M{"bsonType": bson.A{"array", "null"}, "items": story},
			},
		},
	}
}
