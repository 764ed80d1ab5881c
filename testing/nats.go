package testing

import (
	"fmt"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// StartEmbeddedNATS starts an in-process NATS server with JetStream enabled.
//
// The store directory lives under t.TempDir() and the server listens on a
// random loopback port, so parallel tests do not collide. The server and the
// returned connection are shut down when the test completes.
//
// Returns:
//   - *server.Server: The embedded server
//   - *nats.Conn: A client connected to it
func StartEmbeddedNATS(tb testing.TB) (*server.Server, *nats.Conn) {
	tb.Helper()

	ns, err := server.NewServer(&server.Options{
		Host:      "127.0.0.1",
		Port:      -1,
		JetStream: true,
		StoreDir:  tb.TempDir(),
		NoLog:     true,
		NoSigs:    true,
	})
	if err != nil {
		tb.Fatalf("create embedded NATS server: %v", err)
	}

	go ns.Start()

	if !ns.ReadyForConnections(5 * time.Second) {
		ns.Shutdown()
		tb.Fatal("embedded NATS server not ready within 5s")
	}

	nc, err := nats.Connect(ns.ClientURL(),
		nats.Name("ndspace-test"),
		nats.Timeout(2*time.Second),
		nats.MaxReconnects(3),
	)
	if err != nil {
		ns.Shutdown()
		tb.Fatalf("connect to embedded NATS server: %v", err)
	}

	tb.Cleanup(func() {
		nc.Close()
		ns.Shutdown()
		ns.WaitForShutdown()
	})

	return ns, nc
}

// JetStream returns a JetStream handle for nc, failing the test on error.
func JetStream(tb testing.TB, nc *nats.Conn) jetstream.JetStream {
	tb.Helper()

	js, err := jetstream.New(nc)
	if err != nil {
		tb.Fatalf("create JetStream context: %v", err)
	}

	return js
}

// CreateJetStreamKV creates an in-memory KV bucket named bucketName.
//
// Example:
//
//	_, nc := ndtest.StartEmbeddedNATS(t)
//	kv := ndtest.CreateJetStreamKV(t, nc, "plans")
func CreateJetStreamKV(tb testing.TB, nc *nats.Conn, bucketName string) jetstream.KeyValue {
	tb.Helper()

	js := JetStream(tb, nc)
	kv, err := js.CreateKeyValue(tb.Context(), jetstream.KeyValueConfig{
		Bucket:      bucketName,
		Description: fmt.Sprintf("test bucket %s", bucketName),
		Storage:     jetstream.MemoryStorage,
		History:     1,
		Replicas:    1,
	})
	if err != nil {
		tb.Fatalf("create KV bucket %s: %v", bucketName, err)
	}

	return kv
}
