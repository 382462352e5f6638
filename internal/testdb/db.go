package testdb

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/ciutil"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 10 * time.Second

// TestDatabaseName is the database integration tests create collections in.
const TestDatabaseName = "taskDB_test"

// IsIntegrationTestEnvironment returns true if a MongoDB URI is configured,
// indicating that integration tests can be run.
func IsIntegrationTestEnvironment() bool {
	return ciutil.GetTestMongoURI(nil) != ""
}

// GetTestClient connects to the configured MongoDB server and disconnects
// when the test ends. Without a configured URI the test is skipped locally
// and fails in CI, where the database is expected to be present.
func GetTestClient(t *testing.T) *mongo.Client {
	t.Helper()

	uri := ciutil.GetTestMongoURI(nil)
	if uri == "" {
		if ciutil.IsCI() {
			t.Fatalf("%s must be set when running in CI", ciutil.EnvTestMongoURI)
		}
		t.Skipf("%s not set, skipping MongoDB integration test", ciutil.EnvTestMongoURI)
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(TestTimeout))
	require.NoError(t, err, "Failed to create MongoDB client")

	err = client.Ping(ctx, readpref.Primary())
	require.NoError(t, err, "Failed to ping MongoDB at %s", ciutil.MaskSensitiveValue(uri))

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			t.Logf("Warning: failed to disconnect MongoDB client: %v", err)
		}
	})

	return client
}

// NewTestCollection returns a collection with a unique name that is dropped
// when the test ends.
func NewTestCollection(t *testing.T, client *mongo.Client) *mongo.Collection {
	t.Helper()

	name := "tasks_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	coll := client.Database(TestDatabaseName).Collection(name)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
		defer cancel()
		if err := coll.Drop(ctx); err != nil {
			t.Logf("Warning: failed to drop test collection %s: %v", name, err)
		}
	})

	return coll
}
