// Package metrics records build observability data for mpbuild.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so call sites never nil-check. PrometheusRecorder backs the
// Recorder with client_golang collectors; since mpbuild is a short-lived CLI the
// registry is exported once per build in the node-exporter textfile format
// (WriteTextfile) rather than served over HTTP.
package metrics
