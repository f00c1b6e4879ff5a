// Package client is the CLI's connection to the duosync server.
//
// GRPCClient implements remote.Store over the document service, so a sync
// session can run against it unchanged. It attaches the access token to
// every call, refreshes the token pair transparently once the server
// reports it expired, and maps gRPC status codes to the sentinel errors of
// the remote and common packages.
//
// Subscriptions are long-lived server streams. A broken stream is reopened
// with exponential backoff until the subscription is cancelled; every
// reopened stream starts with a full snapshot, so nothing is lost while
// disconnected.
package client
