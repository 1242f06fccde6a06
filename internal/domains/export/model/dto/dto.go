package dto

type ExportResponse struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	Rows     int    `json:"rows"`
}
