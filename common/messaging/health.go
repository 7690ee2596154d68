package messaging

// HealthStatus represents the health state of a messaging connection.
type HealthStatus struct {
	// Enabled is false when the service runs without a broker.
	Enabled bool `json:"enabled"`

	// Connected indicates if the client is connected.
	Connected bool `json:"connected"`

	// Error contains any error message if unhealthy.
	Error string `json:"error,omitempty"`
}

// Healthy reports whether the broker is disabled or connected.
func (s HealthStatus) Healthy() bool {
	return !s.Enabled || s.Connected
}

// CheckClientHealth reports the connection state of client.
// A nil client means messaging is disabled.
func CheckClientHealth(client Client) HealthStatus {
	if client == nil {
		return HealthStatus{}
	}

	status := HealthStatus{Enabled: true, Connected: client.IsConnected()}
	if !status.Connected {
		status.Error = "not connected to message broker"
	}
	return status
}
