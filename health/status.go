package health

// Status is the result of a health-check.
type Status struct {
	IsHealthy bool
	Message   string
}

func (status Status) String() string {
	outcome := "failed"
	if status.IsHealthy {
		outcome = "passed"
	}

	return "Health-check " + outcome + ": " + status.Message
}
