package connection

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"github.com/gettupp/backoffice/logger"
)

const (
	// CtxFirestoreKey is how firestore connections are stored/retrieved.
	CtxFirestoreKey = "app-firestore"
)

type Connection struct {
	*FirestoreClient
}

// NewConnection initializes the db connections necessary for api support.
func NewConnection(ctx context.Context, log *logger.Logging) (*Connection, error) {
	fs, err := NewFirestore(ctx, log)
	if err != nil {
		return nil, err
	}

	return &Connection{
		fs,
	}, nil
}

// NewConnectionWithClient wraps an existing firestore client, e.g. one pointed at the emulator.
func NewConnectionWithClient(fs *firestore.Client) *Connection {
	return &Connection{
		&FirestoreClient{fs},
	}
}

// Firestore returns a firestore connection that was stored in context.
// it returns by default a firestore connection, if there was not on context.
func (c *Connection) Firestore(ctx context.Context) *firestore.Client {
	if fs, ok := ctx.Value(CtxFirestoreKey).(*firestore.Client); ok {
		return fs
	}

	return c.fs
}

// FirestoreWithContext stores under gin context, a firestore connection.
func (c *Connection) FirestoreWithContext(ctx *gin.Context) {
	ctx.Set(CtxFirestoreKey, c.fs)
}

// Close releases the underlying clients.
func (c *Connection) Close() error {
	if c.fs == nil {
		return nil
	}

	return c.fs.Close()
}

type FirestoreFromContextFun = func(ctx context.Context) *firestore.Client
