package dto

// EmployerJobResponse oferta del panel del empleador con su conteo de postulaciones.
type EmployerJobResponse struct {
	JobResponse
	ApplicationCount int `json:"application_count"`
}

// EmployerDashboardResponse ofertas propias, más recientes primero.
type EmployerDashboardResponse struct {
	Jobs              []EmployerJobResponse `json:"jobs"`
	TotalJobs         int                   `json:"total_jobs"`
	ActiveJobs        int                   `json:"active_jobs"`
	TotalApplications int                   `json:"total_applications"`
}
