package cluster

// DefaultLogTail is the number of log lines returned when the caller does
// not request a specific tail.
const DefaultLogTail = 100

// Container describes a managed cluster container.
type Container struct {
	ID     string
	Names  []string
	Image  string
	State  string
	Status string
}
