package server

// Server is a runnable transport listener.
type Server interface {
	// RunServer serves until a shutdown signal arrives.
	RunServer()

	// Shutdown stops accepting connections and drains in-flight requests.
	Shutdown()
}
