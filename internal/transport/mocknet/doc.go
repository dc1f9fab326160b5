// Package mocknet provides in-memory transports for running protocol parties
// inside a single process. Queues are unbounded FIFOs, so a send never waits
// for the receiver.
package mocknet
