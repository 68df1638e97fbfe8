package kvstore

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"fleamarket/pkg/logger"
)

type kvDocument struct {
	Value     string    `firestore:"value"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// FirestoreStore keeps each key as one document in a collection. Documents are
// capped at 1 MiB by Firestore, which bounds the size of a collection blob.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
}

type FirestoreOptions struct {
	ProjectID          string
	Collection         string
	ServiceAccountJSON string
	ServiceAccountPath string
}

func NewFirestoreStore(client *firestore.Client, collection string) *FirestoreStore {
	if collection == "" {
		collection = "kv"
	}
	return &FirestoreStore{client: client, collection: collection}
}

func OpenFirestoreStore(ctx context.Context, opts FirestoreOptions) (*FirestoreStore, error) {
	var clientOpts []option.ClientOption
	switch {
	case opts.ServiceAccountJSON != "":
		logger.Info("Using Firebase service account from environment variable")
		clientOpts = append(clientOpts, option.WithCredentialsJSON([]byte(opts.ServiceAccountJSON)))
	case opts.ServiceAccountPath != "":
		if _, err := os.Stat(opts.ServiceAccountPath); err != nil {
			return nil, fmt.Errorf("service account file %s: %w", opts.ServiceAccountPath, err)
		}
		logger.Info("Using Firebase service account from file: %s", opts.ServiceAccountPath)
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.ServiceAccountPath))
	default:
		logger.Info("Using application default credentials for Firestore")
	}

	app, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: opts.ProjectID}, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}

	return NewFirestoreStore(client, opts.Collection), nil
}

func (s *FirestoreStore) doc(key string) *firestore.DocumentRef {
	return s.client.Collection(s.collection).Doc(documentID(key))
}

// documentID maps a key to a valid document id; ids cannot contain a slash.
func documentID(key string) string {
	return strings.ReplaceAll(key, "/", "_")
}

func (s *FirestoreStore) Get(ctx context.Context, key string) (string, bool, error) {
	snap, err := s.doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", false, nil
		}
		return "", false, fmt.Errorf("firestore get %s: %w", key, err)
	}

	var doc kvDocument
	if err := snap.DataTo(&doc); err != nil {
		return "", false, fmt.Errorf("firestore decode %s: %w", key, err)
	}
	return doc.Value, true, nil
}

func (s *FirestoreStore) Set(ctx context.Context, key string, value string) error {
	_, err := s.doc(key).Set(ctx, kvDocument{
		Value:     value,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("firestore set %s: %w", key, err)
	}
	return nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
