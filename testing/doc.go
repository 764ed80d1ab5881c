// Package testing provides helpers for tests that need a NATS JetStream
// server, such as the plan store tests.
//
// Everything runs in-process: StartEmbeddedNATS boots a single JetStream
// enabled server on a random port and tears it down through t.Cleanup.
//
//	import ndtest "github.com/arloliu/ndspace/testing"
//
//	func TestPublish(t *testing.T) {
//	    _, nc := ndtest.StartEmbeddedNATS(t)
//	    js := ndtest.JetStream(t, nc)
//	    store, err := planstore.New(t.Context(), js, planstore.DefaultConfig())
//	    ...
//	}
package testing
