package dto

// CompanyResponse empresa en el directorio público.
type CompanyResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	CompanyName string `json:"company_name"`
	OpenJobs    int    `json:"open_jobs"`
	TotalJobs   int    `json:"total_jobs"`
}

// CompanyDetailResponse ficha de la empresa con sus ofertas activas.
type CompanyDetailResponse struct {
	CompanyResponse
	Jobs []JobResponse `json:"jobs"`
}
