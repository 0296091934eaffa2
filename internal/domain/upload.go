package domain

// UploadResult é a resposta de um upload bem-sucedido.
type UploadResult struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Path    string `json:"path"`
}

// SetupInfo descreve os passos de provisionamento do banco.
type SetupInfo struct {
	Message      string   `json:"message"`
	Instructions []string `json:"instructions"`
	Migrate      string   `json:"migrate"`
}
