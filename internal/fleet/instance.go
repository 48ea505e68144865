package fleet

// Status is the lifecycle state reported by the provider for a server.
type Status string

// Server statuses as reported by Hetzner Cloud.
const (
	StatusInitializing Status = "initializing"
	StatusStarting     Status = "starting"
	StatusRunning      Status = "running"
	StatusStopping     Status = "stopping"
	StatusOff          Status = "off"
	StatusDeleting     Status = "deleting"
	StatusMigrating    Status = "migrating"
	StatusRebuilding   Status = "rebuilding"
	StatusUnknown      Status = "unknown"
)

// Instance is a server as observed in one listing.
type Instance struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	// IPv4 is empty while the server has no public address.
	IPv4   string            `json:"ipv4,omitempty"`
	Status Status            `json:"status"`
	Labels map[string]string `json:"labels,omitempty"`
}

// InstanceSpec describes a server to be created.
type InstanceSpec struct {
	Image      string
	ServerType string
	Location   string
	SSHKeys    []string
	UserData   string
	Labels     map[string]string
}
