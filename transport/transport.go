// Package transport defines the bulk-transfer capability the DDT protocol
// layer is written against. The protocol code never opens devices itself; it
// receives a Pipe and issues single blocking transfers on it.
package transport

// Pipe is a pair of USB bulk endpoints on one open device.
//
// Both calls block until the transfer completes or the implementation's own
// timeout elapses; there is no cancellation at this layer. Implementations
// are not required to be safe for concurrent use.
type Pipe interface {
	// ReadPipe fills buf with one transfer from the given IN endpoint and
	// returns the number of bytes received.
	ReadPipe(endpoint byte, buf []byte) (int, error)

	// WritePipe sends data as one transfer to the given OUT endpoint and
	// returns the number of bytes written.
	WritePipe(endpoint byte, data []byte) (int, error)
}
