package dto

type ExportFileResponse struct {
	Collection string `json:"collection"`
	Path       string `json:"path"`
	Rows       int    `json:"rows"`
}
