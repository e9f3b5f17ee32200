package docstore

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"log/slog"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DefaultCollection = "assets"

type MongoClient struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoClient connects to the document store. certFile is optional: a PEM
// file holding a CA bundle and, if present, a client certificate + key.
func NewMongoClient(ctx context.Context, uri, database, collection, certFile string) (*MongoClient, error) {
	if uri == "" {
		return nil, fmt.Errorf("store.uri is required for the mongo driver")
	}
	if collection == "" {
		collection = DefaultCollection
	}

	opts := options.Client().ApplyURI(uri)
	if certFile != "" {
		tlsConfig, err := loadTLSConfig(certFile)
		if err != nil {
			return nil, err
		}
		opts.SetTLSConfig(tlsConfig)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("did not connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	slog.Info("Connected to document store", "database", database, "collection", collection)
	return &MongoClient{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

// Close disconnects from the server.
func (m *MongoClient) Close(ctx context.Context) {
	if m.client != nil {
		if err := m.client.Disconnect(ctx); err != nil {
			slog.Error("mongo disconnect failed", "error", err)
		}
	}
}

func loadTLSConfig(certFile string) (*tls.Config, error) {
	data, err := os.ReadFile(certFile)
	if err != nil {
		return nil, fmt.Errorf("read store.cert_file: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(data) {
		return nil, fmt.Errorf("store.cert_file %s holds no certificate", certFile)
	}
	cfg := &tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12}

	// A combined PEM with a private key doubles as the client certificate.
	if hasPrivateKey(data) {
		pair, err := tls.X509KeyPair(data, data)
		if err != nil {
			return nil, fmt.Errorf("parse client certificate: %w", err)
		}
		cfg.Certificates = []tls.Certificate{pair}
	}
	return cfg, nil
}

func hasPrivateKey(data []byte) bool {
	for {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			return false
		}
		switch block.Type {
		case "PRIVATE KEY", "RSA PRIVATE KEY", "EC PRIVATE KEY":
			return true
		}
	}
}
