// Package telemetry provides the hamcycle logger, its context plumbing and
// the Prometheus metrics recorded for each search.
package telemetry
