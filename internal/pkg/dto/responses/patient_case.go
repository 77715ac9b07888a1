package responses

type PatientCase struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Age           int    `json:"age"`
	CancerType    string `json:"cancer_type"`
	Stage         string `json:"stage"`
	RiskLevel     int    `json:"risk_level"`
	LastVisit     string `json:"last_visit"`
	Status        string `json:"status"`
	Survivability int    `json:"survivability"`
}

type CaseExport struct {
	ObjectName   string `json:"object_name"`
	Bucket       string `json:"bucket"`
	CaseCount    int    `json:"case_count"`
	DownloadURL  string `json:"download_url"`
	URLExpiresAt string `json:"url_expires_at"`
}
